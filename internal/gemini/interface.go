package gemini

import "context"

// Result carries the text of one generation call plus the optional
// usage-metadata side channel. Usage is nil when the API omits it.
type Result struct {
	Text  string
	Usage *TokenCounts
}

// TokenCounts is the usage metadata of a single call.
type TokenCounts struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// Generator performs a single blocking text-generation call. Retry policy
// lives with the caller, not here.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Result, error)
}
