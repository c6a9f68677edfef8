package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generate performs one GenerateContent call and extracts the text of the
// first candidate. An empty candidate list or empty text is returned as an
// empty Result, not an error; the caller decides whether that is retryable.
func (g *implGenerator) Generate(ctx context.Context, prompt string) (*Result, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	res := &Result{
		Text:  extractText(resp),
		Usage: extractUsage(resp),
	}

	if res.Usage == nil {
		g.logger.Info(ctx, "Usage metadata unavailable (model: %s)", g.model)
	}

	return res, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}

func extractUsage(resp *genai.GenerateContentResponse) *TokenCounts {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}

	return &TokenCounts{
		InputTokens:  int64(resp.UsageMetadata.PromptTokenCount),
		OutputTokens: int64(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int64(resp.UsageMetadata.TotalTokenCount),
	}
}
