package watcher

import "context"

// Watcher monitors the input folder for newly dropped transcripts.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// TranscriptHandler summarizes a single newly created transcript file.
type TranscriptHandler func(ctx context.Context, path string) error
