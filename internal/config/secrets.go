package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Secrets carries the API keys, read from the environment rather than the
// config file so they never end up committed next to paths and prompts.
type Secrets struct {
	FreeAPIKey string `env:"GOOGLE_API_KEY_FREE"`
	PaidAPIKey string `env:"GOOGLE_API_KEY_PAID"`
}

// LoadSecrets reads API keys from environment variables.
func LoadSecrets() (Secrets, error) {
	var s Secrets
	if err := env.Parse(&s); err != nil {
		return Secrets{}, fmt.Errorf("parse environment: %w", err)
	}
	return s, nil
}

// KeyFor returns the API key for the given mode, or an error naming the
// missing environment variable.
func (s Secrets) KeyFor(mode string) (string, error) {
	mc, ok := APIModes[mode]
	if !ok {
		return "", fmt.Errorf("unsupported api mode: %s", mode)
	}

	var key string
	switch mode {
	case "free":
		key = s.FreeAPIKey
	case "paid":
		key = s.PaidAPIKey
	}

	if key == "" {
		return "", fmt.Errorf("%s key is not set (environment variable: %s)", mc.DisplayName, mc.EnvKeyName)
	}
	return key, nil
}
