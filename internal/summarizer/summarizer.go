package summarizer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const transcriptExt = ".txt"

// ProcessFolder summarizes every transcript below inputRoot into a mirrored
// tree under outputRoot. Per-file failures are logged and counted but never
// abort the batch; only an invalid input root aborts up front. Cancellation
// is honored between files, never mid-call.
func (s *implSummarizer) ProcessFolder(ctx context.Context, inputRoot, outputRoot string) (Report, error) {
	info, err := os.Stat(inputRoot)
	if os.IsNotExist(err) {
		return Report{}, &ConfigurationError{Path: inputRoot, Reason: "input folder does not exist"}
	}
	if err != nil {
		return Report{}, fmt.Errorf("stat input folder: %w", err)
	}
	if !info.IsDir() {
		return Report{}, &ConfigurationError{Path: inputRoot, Reason: "input path is not a folder"}
	}

	if err := os.MkdirAll(outputRoot, 0755); err != nil {
		return Report{}, fmt.Errorf("create output folder: %w", err)
	}

	files, err := discoverTranscripts(inputRoot)
	if err != nil {
		return Report{}, fmt.Errorf("discover transcripts: %w", err)
	}

	if len(files) == 0 {
		s.logger.Warn(ctx, "No %s files found in %s", transcriptExt, inputRoot)
		return Report{Success: true}, nil
	}

	s.logger.Info(ctx, "Found %d transcript files", len(files))

	processed := 0
	failed := 0

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			s.logger.Warn(ctx, "Batch interrupted after %d/%d files", i, len(files))
			return Report{Total: len(files), Processed: processed, Failed: failed}, err
		}

		s.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(files), filepath.Base(path))

		if err := s.ProcessFile(ctx, path, inputRoot, outputRoot); err != nil {
			s.logger.Error(ctx, "Failed to process %s: %v", path, err)
			failed++
			continue
		}
		processed++
	}

	s.logger.Info(ctx, "Batch complete: total %d, processed %d, failed %d", len(files), processed, failed)
	s.logger.Info(ctx, "Total token usage - input: %d, output: %d, total: %d (model: %s)",
		s.usage.TotalInputTokens, s.usage.TotalOutputTokens, s.usage.Total(), s.mode.ModelName)

	return Report{
		Success:   true,
		Total:     len(files),
		Processed: processed,
		Failed:    failed,
	}, nil
}

// ProcessFile runs the per-file pipeline: read, summarize, resolve the
// output path, write.
func (s *implSummarizer) ProcessFile(ctx context.Context, path, inputRoot, outputRoot string) error {
	content, err := s.reader.Read(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	summary, err := s.summarize(ctx, content)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	outPath, err := OutputPath(path, inputRoot, outputRoot, s.mode.ModelName)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	if err := s.writeSummary(summary, path, outPath); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}

	s.logger.Info(ctx, "Summary saved: %s", outPath)
	return nil
}

func (s *implSummarizer) writeSummary(summary, inputPath, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("create output directories: %w", err)
	}

	if s.cfg.Output.Format == "docx" {
		title := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		docxPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".docx"
		return summaryToDocx(title, summary, docxPath)
	}

	return os.WriteFile(outPath, []byte(summary), 0644)
}

// discoverTranscripts walks inputRoot collecting every regular file with
// the transcript extension (literal, case-sensitive match). Results are
// sorted lexicographically so processing order is deterministic regardless
// of how the filesystem enumerates entries.
func discoverTranscripts(inputRoot string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if filepath.Ext(d.Name()) != transcriptExt {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
