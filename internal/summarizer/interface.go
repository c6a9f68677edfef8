package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/gemini"
)

// Report aggregates the outcome of one batch. For any completed batch
// Processed + Failed == Total.
type Report struct {
	Success   bool
	Total     int
	Processed int
	Failed    int
}

// Summarizer drives the transcript summarization pipeline: discover .txt
// files, read them, summarize via the remote model, and write results into
// a mirrored output tree.
type Summarizer interface {
	ProcessFolder(ctx context.Context, inputRoot, outputRoot string) (Report, error)
	ProcessFile(ctx context.Context, path, inputRoot, outputRoot string) error
	Usage() gemini.Usage
}
