package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

// Grace period for the producer to finish writing a freshly created file.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	inputDir string
	handler  TranscriptHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start blocks, summarizing each .txt file created in the input folder
// until the context is cancelled. Handling is sequential and synchronous;
// files dropped while a summary is in flight queue up in the event channel.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching for new transcripts in: %s", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Transcript watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if filepath.Ext(event.Name) != ".txt" {
				w.logger.Debug(ctx, "Ignoring non-transcript file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New transcript detected: %s", event.Name)
			time.Sleep(settleDelay)

			if err := w.handler(ctx, event.Name); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying filesystem watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
