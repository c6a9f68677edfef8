package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

// New creates a Watcher on inputDir. Transcripts are handled one at a time:
// the remote API's per-mode rate floor assumes sequential calls, so there
// is no concurrency knob here.
func New(inputDir string, handler TranscriptHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  fsw,
	}, nil
}
