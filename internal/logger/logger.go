package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type implLogger struct {
	logger *log.Logger
	level  string
}

// New creates a Logger writing to stdout at the given level.
func New(level string) Logger {
	return &implLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		level:  strings.ToLower(level),
	}
}

// NewWithFile creates a Logger that tees output into logFile in addition to
// stdout. Parent directories are created as needed. If the file cannot be
// opened, logging falls back to stdout only.
func NewWithFile(level, logFile string) Logger {
	var out io.Writer = os.Stdout

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err == nil {
			if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				out = io.MultiWriter(os.Stdout, f)
			}
		}
	}

	return &implLogger{
		logger: log.New(out, "", log.LstdFlags),
		level:  strings.ToLower(level),
	}
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.logger.Printf("[DEBUG] "+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.logger.Printf("[INFO] "+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.logger.Printf("[WARN] "+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.logger.Printf("[ERROR] "+msg, args...)
	}
}

// Helper to format error messages
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
