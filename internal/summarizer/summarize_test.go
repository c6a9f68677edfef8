package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/gemini"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/reader"
)

// fakeGenerator answers each call through fn, counting calls.
type fakeGenerator struct {
	calls int
	fn    func(call int, prompt string) (*gemini.Result, error)
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (*gemini.Result, error) {
	f.calls++
	return f.fn(f.calls, prompt)
}

// echoGenerator returns the transcript content (the part after the prompt)
// unchanged.
func echoGenerator() *fakeGenerator {
	return &fakeGenerator{fn: func(_ int, prompt string) (*gemini.Result, error) {
		parts := strings.SplitN(prompt, "\n\n", 2)
		return &gemini.Result{Text: parts[len(parts)-1]}, nil
	}}
}

// newTestSummarizer builds a summarizer with a recording sleep so tests run
// instantly while still asserting the backoff schedule.
func newTestSummarizer(t *testing.T, gen gemini.Generator, mutate func(*config.Config)) (*implSummarizer, *[]time.Duration) {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	log := logger.New("error")
	s := New(cfg, gen, reader.New(log), log).(*implSummarizer)

	slept := &[]time.Duration{}
	s.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return s, slept
}

func TestSummarizeSucceedsAfterTransientFailures(t *testing.T) {
	gen := &fakeGenerator{fn: func(call int, _ string) (*gemini.Result, error) {
		if call <= 2 {
			return nil, errors.New("transient: 429")
		}
		return &gemini.Result{Text: "summary"}, nil
	}}
	s, slept := newTestSummarizer(t, gen, nil) // free mode, 4s floor, 3 retries

	got, err := s.summarize(context.Background(), "transcript")
	if err != nil {
		t.Fatalf("summarize() error = %v", err)
	}
	if got != "summary" {
		t.Errorf("summarize() = %q, want %q", got, "summary")
	}
	if gen.calls != 3 {
		t.Errorf("calls = %d, want 3", gen.calls)
	}

	// attempt 0 fails: backoff 2^0+4s; attempt 1: mode delay, fails,
	// backoff 2^1+4s; attempt 2: mode delay, succeeds.
	want := []time.Duration{5 * time.Second, 4 * time.Second, 6 * time.Second, 4 * time.Second}
	if len(*slept) != len(want) {
		t.Fatalf("sleeps = %v, want %v", *slept, want)
	}
	for i := range want {
		if (*slept)[i] != want[i] {
			t.Errorf("sleep[%d] = %v, want %v", i, (*slept)[i], want[i])
		}
	}
}

func TestSummarizeExhaustsRetries(t *testing.T) {
	gen := &fakeGenerator{fn: func(int, string) (*gemini.Result, error) {
		return nil, errors.New("boom")
	}}
	s, slept := newTestSummarizer(t, gen, nil)

	_, err := s.summarize(context.Background(), "transcript")
	if err == nil {
		t.Fatal("summarize() should fail when all attempts fail")
	}

	var sumErr *SummarizationError
	if !errors.As(err, &sumErr) {
		t.Fatalf("error = %T, want *SummarizationError", err)
	}
	if sumErr.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", sumErr.Attempts)
	}
	if gen.calls != 3 {
		t.Errorf("calls = %d, want exactly maxRetries", gen.calls)
	}

	// No backoff after the final attempt.
	want := []time.Duration{5 * time.Second, 4 * time.Second, 6 * time.Second, 4 * time.Second}
	if len(*slept) != len(want) {
		t.Errorf("sleeps = %v, want %v", *slept, want)
	}
}

func TestSummarizeEmptyResponseIsTransient(t *testing.T) {
	gen := &fakeGenerator{fn: func(call int, _ string) (*gemini.Result, error) {
		if call == 1 {
			return &gemini.Result{Text: ""}, nil
		}
		return &gemini.Result{Text: "second try"}, nil
	}}
	s, _ := newTestSummarizer(t, gen, nil)

	got, err := s.summarize(context.Background(), "transcript")
	if err != nil {
		t.Fatalf("summarize() error = %v", err)
	}
	if got != "second try" {
		t.Errorf("summarize() = %q, want %q", got, "second try")
	}
	if gen.calls != 2 {
		t.Errorf("calls = %d, want 2", gen.calls)
	}
}

func TestSummarizeAccumulatesUsage(t *testing.T) {
	gen := &fakeGenerator{fn: func(int, string) (*gemini.Result, error) {
		return &gemini.Result{
			Text:  "ok",
			Usage: &gemini.TokenCounts{InputTokens: 120, OutputTokens: 30, TotalTokens: 150},
		}, nil
	}}
	s, _ := newTestSummarizer(t, gen, nil)

	ctx := context.Background()
	if _, err := s.summarize(ctx, "one"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.summarize(ctx, "two"); err != nil {
		t.Fatal(err)
	}

	u := s.Usage()
	if u.TotalInputTokens != 240 || u.TotalOutputTokens != 60 {
		t.Errorf("usage = %+v, want input 240 / output 60", u)
	}
}

func TestSummarizeMissingUsageNeverFails(t *testing.T) {
	gen := &fakeGenerator{fn: func(int, string) (*gemini.Result, error) {
		return &gemini.Result{Text: "ok"}, nil
	}}
	s, _ := newTestSummarizer(t, gen, nil)

	if _, err := s.summarize(context.Background(), "content"); err != nil {
		t.Fatalf("summarize() error = %v", err)
	}
	if s.Usage().Total() != 0 {
		t.Errorf("usage should stay zero without metadata")
	}
}

func TestSummarizeUsesCustomPrompt(t *testing.T) {
	var seen string
	gen := &fakeGenerator{fn: func(_ int, prompt string) (*gemini.Result, error) {
		seen = prompt
		return &gemini.Result{Text: "ok"}, nil
	}}
	s, _ := newTestSummarizer(t, gen, func(cfg *config.Config) {
		cfg.API.Prompt = "three bullet points only"
	})

	if _, err := s.summarize(context.Background(), "content"); err != nil {
		t.Fatal(err)
	}
	if seen != "three bullet points only\n\ncontent" {
		t.Errorf("prompt = %q", seen)
	}
}
