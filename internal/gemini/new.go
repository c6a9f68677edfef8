package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implGenerator struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// New creates a Generator backed by the Gemini API. Client construction is
// the pre-flight check: if it fails, the batch never starts.
func New(ctx context.Context, apiKey, model string, log logger.Logger) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	log.Info(ctx, "Gemini client initialized - model: %s", model)

	return &implGenerator{
		client: client,
		model:  model,
		logger: log,
	}, nil
}
