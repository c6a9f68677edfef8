package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API     APIConfig     `yaml:"api"`
	Paths   PathsConfig   `yaml:"paths"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type APIConfig struct {
	Mode       string `yaml:"mode"`
	MaxRetries int    `yaml:"max_retries"`
	Prompt     string `yaml:"prompt"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ModeConfig bundles the rate policy of one API tier.
type ModeConfig struct {
	ModelName    string
	DelaySeconds float64
	DisplayName  string
	EnvKeyName   string
}

// APIModes maps the selectable API tiers to their model and rate settings.
// The free tier enforces a long inter-call delay, the paid tier runs near
// full speed.
var APIModes = map[string]ModeConfig{
	"free": {
		ModelName:    "gemini-1.5-flash-latest",
		DelaySeconds: 4,
		DisplayName:  "Free API (rate limited)",
		EnvKeyName:   "GOOGLE_API_KEY_FREE",
	},
	"paid": {
		ModelName:    "gemini-2.5-flash-preview-05-20",
		DelaySeconds: 0.2,
		DisplayName:  "Paid API (full speed)",
		EnvKeyName:   "GOOGLE_API_KEY_PAID",
	},
}

// Delay returns the per-call base delay as a duration.
func (m ModeConfig) Delay() time.Duration {
	return time.Duration(m.DelaySeconds * float64(time.Second))
}

// Load reads configuration from a YAML file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is present.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate() // defaults only, cannot fail on a zero value
	return cfg
}

func (c *Config) Validate() error {
	if c.API.Mode == "" {
		c.API.Mode = "free"
	}
	if _, ok := APIModes[c.API.Mode]; !ok {
		return fmt.Errorf("unsupported api.mode %q (supported: free, paid)", c.API.Mode)
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = 3
	}
	if c.API.MaxRetries < 1 {
		return fmt.Errorf("api.max_retries must be >= 1")
	}
	if c.Output.Format == "" {
		c.Output.Format = "txt"
	}
	if c.Output.Format != "txt" && c.Output.Format != "docx" {
		return fmt.Errorf("unsupported output.format %q (supported: txt, docx)", c.Output.Format)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File == "" {
		c.Logging.File = "logs/summary_tool.log"
	}

	return nil
}

// Mode returns the ModeConfig selected by api.mode. Validate must have run.
func (c *Config) Mode() ModeConfig {
	return APIModes[c.API.Mode]
}
