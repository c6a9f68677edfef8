package summarizer

import (
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/gemini"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/reader"
)

type implSummarizer struct {
	cfg       *config.Config
	mode      config.ModeConfig
	generator gemini.Generator
	reader    reader.Reader
	logger    logger.Logger
	usage     *gemini.Usage
	sleep     func(time.Duration)
}

// New creates a Summarizer. The token-usage accumulator is owned here and
// reset per instance, so each run starts from zero.
func New(cfg *config.Config, gen gemini.Generator, rd reader.Reader, log logger.Logger) Summarizer {
	return &implSummarizer{
		cfg:       cfg,
		mode:      cfg.Mode(),
		generator: gen,
		reader:    rd,
		logger:    log,
		usage:     &gemini.Usage{},
		sleep:     time.Sleep,
	}
}

// Usage returns the tokens accumulated so far in this run.
func (s *implSummarizer) Usage() gemini.Usage {
	return *s.usage
}
