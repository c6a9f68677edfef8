package summarizer

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/transcript-flow/internal/gemini"
	"github.com/nguyentantai21042004/transcript-flow/pkg/retry"
)

// The default prompt asks for detailed, MECE meeting minutes without
// timestamps or tables. Overridable per run via api.prompt or the CLI.
const defaultPrompt = `너는 뛰어난 회의록 정리자라고 하자. 주어진 txt 파일은 회의 '녹취록'이다. 아주 상세하고도 MECE하게 정리해 주길 부탁한다. 단, 타임스탬프는 제거한다. 단, 테이블로 표현하지 않는다.`

// An empty body with no transport error. Indistinguishable from a quota
// burst on the free tier, so it goes through the same retry path.
var errEmptyResponse = errors.New("empty response from model")

func (s *implSummarizer) promptText() string {
	if s.cfg.API.Prompt != "" {
		return s.cfg.API.Prompt
	}
	return defaultPrompt
}

// summarize sends the transcript to the model, retrying transient failures.
// Attempts after the first wait the mode's base delay before calling; a
// failed attempt with attempts remaining additionally backs off
// exponentially. Exhausting all attempts yields a *SummarizationError.
func (s *implSummarizer) summarize(ctx context.Context, content string) (string, error) {
	prompt := s.promptText() + "\n\n" + content
	maxRetries := s.cfg.API.MaxRetries

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			s.logger.Info(ctx, "Waiting %s to respect the %s rate policy...", s.mode.Delay(), s.mode.DisplayName)
			s.sleep(s.mode.Delay())
		}

		res, err := s.generator.Generate(ctx, prompt)
		switch {
		case err == nil && res.Text != "":
			s.recordUsage(ctx, res.Usage)
			return res.Text, nil
		case err == nil:
			lastErr = errEmptyResponse
		default:
			lastErr = err
		}

		s.logger.Warn(ctx, "API request failed (attempt %d/%d): %v", attempt+1, maxRetries, lastErr)

		if attempt < maxRetries-1 {
			delay := retry.ExponentialBackoff(attempt, s.mode.Delay())
			s.logger.Info(ctx, "Backing off %s before retrying...", delay)
			s.sleep(delay)
		}
	}

	return "", &SummarizationError{Attempts: maxRetries, Err: lastErr}
}

// recordUsage accumulates and logs the usage metadata of one successful
// call. Absent metadata never fails the call.
func (s *implSummarizer) recordUsage(ctx context.Context, tc *gemini.TokenCounts) {
	if tc == nil {
		return
	}
	s.usage.Add(tc)
	s.logger.Info(ctx, "Token usage - input: %d, output: %d, total: %d (model: %s)",
		tc.InputTokens, tc.OutputTokens, tc.TotalTokens, s.mode.ModelName)
}
