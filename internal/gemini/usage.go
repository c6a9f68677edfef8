package gemini

// Usage accumulates token counts across a whole run. It is owned by the
// batch orchestrator and updated sequentially, so no locking is needed.
type Usage struct {
	TotalInputTokens  int64
	TotalOutputTokens int64
}

// Add accumulates the counts of one successful call. A nil TokenCounts is
// ignored.
func (u *Usage) Add(tc *TokenCounts) {
	if tc == nil {
		return
	}
	u.TotalInputTokens += tc.InputTokens
	u.TotalOutputTokens += tc.OutputTokens
}

// Total returns the combined input and output token count.
func (u Usage) Total() int64 {
	return u.TotalInputTokens + u.TotalOutputTokens
}
