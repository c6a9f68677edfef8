package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/gemini"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/reader"
	"github.com/nguyentantai21042004/transcript-flow/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
)

func main() {
	ctx := context.Background()

	cfg, err := loadConfig("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithFile(cfg.Logging.Level, cfg.Logging.File)

	printBanner()

	stdin := bufio.NewReader(os.Stdin)

	mode := promptAPIMode(stdin)
	cfg.API.Mode = mode

	if prompt := promptCustomPrompt(stdin); prompt != "" {
		cfg.API.Prompt = prompt
	}

	inputRoot := promptInputFolder(stdin, cfg.Paths.Input)
	outputRoot := promptOutputFolder(stdin, inputRoot, cfg.Paths.Output)
	watchMode := promptWatchMode(stdin)

	if !confirmSettings(stdin, cfg, inputRoot, outputRoot, watchMode) {
		fmt.Println("Aborted.")
		return
	}

	secrets, err := config.LoadSecrets()
	if err != nil {
		log.Error(ctx, "Failed to read environment: %v", err)
		os.Exit(1)
	}
	apiKey, err := secrets.KeyFor(cfg.API.Mode)
	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}

	gen, err := gemini.New(ctx, apiKey, cfg.Mode().ModelName, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize Gemini: %v", err)
		os.Exit(1)
	}

	s := summarizer.New(cfg, gen, reader.New(log), log)

	// SIGINT cancels between files; an in-flight call finishes first.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Warn(ctx, "Shutdown signal received, stopping after the current file...")
		cancel()
	}()

	fmt.Println()
	log.Info(ctx, "Starting - mode: %s, model: %s", cfg.Mode().DisplayName, cfg.Mode().ModelName)

	if watchMode {
		runWatch(ctx, s, inputRoot, outputRoot, log)
		return
	}

	report, err := s.ProcessFolder(ctx, inputRoot, outputRoot)
	if err != nil && err != context.Canceled {
		log.Error(ctx, "Batch failed: %v", err)
		fmt.Printf("\nError: %v\n", err)
		os.Exit(1)
	}

	printReport(report, s.Usage(), outputRoot)
}

// loadConfig reads config.yaml when present; a missing file just means all
// defaults.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWatch(ctx context.Context, s summarizer.Summarizer, inputRoot, outputRoot string, log logger.Logger) {
	handler := func(ctx context.Context, path string) error {
		return s.ProcessFile(ctx, path, inputRoot, outputRoot)
	}

	w, err := watcher.New(inputRoot, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	log.Info(ctx, "Press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && err != context.Canceled {
		log.Error(ctx, "Watcher error: %v", err)
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("    Meeting Transcript Summarizer")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
}

func promptAPIMode(r *bufio.Reader) string {
	for {
		fmt.Println("Select an API mode:")
		fmt.Printf("1. %s\n", config.APIModes["free"].DisplayName)
		fmt.Printf("2. %s\n", config.APIModes["paid"].DisplayName)
		fmt.Println()

		switch readLine(r, "Choice (1 or 2): ") {
		case "1":
			return "free"
		case "2":
			return "paid"
		default:
			fmt.Println("Invalid choice. Enter 1 or 2.")
			fmt.Println()
		}
	}
}

// promptCustomPrompt reads an optional multi-line prompt. Two consecutive
// blank lines finish the input; an immediate blank line keeps the default.
func promptCustomPrompt(r *bufio.Reader) string {
	fmt.Println("Enter a custom summarization prompt, or press Enter to keep the default.")
	fmt.Println("(multi-line input; finish with two blank lines)")
	fmt.Println()

	var lines []string
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(line) == "" {
			if len(lines) == 0 {
				break
			}
			if strings.TrimSpace(lines[len(lines)-1]) == "" {
				lines = lines[:len(lines)-1]
				break
			}
		}

		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	prompt := strings.TrimSpace(strings.Join(lines, "\n"))
	if prompt == "" {
		fmt.Println("Using the default prompt.")
	} else {
		fmt.Println("Using the custom prompt.")
	}
	return prompt
}

func promptInputFolder(r *bufio.Reader, fallback string) string {
	for {
		label := "Transcript folder"
		if fallback != "" {
			label = fmt.Sprintf("Transcript folder [%s]", fallback)
		}

		path := strings.Trim(readLine(r, label+": "), `"`)
		if path == "" {
			path = fallback
		}
		if path == "" {
			fmt.Println("Please enter a folder path.")
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			fmt.Printf("Error: path does not exist: %s\n\n", path)
			continue
		}
		if !info.IsDir() {
			fmt.Printf("Error: path is not a folder: %s\n\n", path)
			continue
		}
		return path
	}
}

func promptOutputFolder(r *bufio.Reader, inputRoot, fallback string) string {
	if fallback == "" {
		fallback = filepath.Join(inputRoot, "summarized_results")
	}

	path := strings.Trim(readLine(r, fmt.Sprintf("Output folder [%s]: ", fallback)), `"`)
	if path == "" {
		return fallback
	}
	return path
}

func promptWatchMode(r *bufio.Reader) bool {
	for {
		fmt.Println()
		fmt.Println("Run mode:")
		fmt.Println("1. Summarize the folder once")
		fmt.Println("2. Watch the folder for new transcripts")
		fmt.Println()

		switch readLine(r, "Choice (1 or 2): ") {
		case "1":
			return false
		case "2":
			return true
		default:
			fmt.Println("Invalid choice. Enter 1 or 2.")
		}
	}
}

func confirmSettings(r *bufio.Reader, cfg *config.Config, inputRoot, outputRoot string, watchMode bool) bool {
	runMode := "one-shot batch"
	if watchMode {
		runMode = "watch folder"
	}
	promptKind := "default"
	if cfg.API.Prompt != "" {
		promptKind = "custom"
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("Settings")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("API mode:      %s\n", cfg.Mode().DisplayName)
	fmt.Printf("Model:         %s\n", cfg.Mode().ModelName)
	fmt.Printf("Input folder:  %s\n", inputRoot)
	fmt.Printf("Output folder: %s\n", outputRoot)
	fmt.Printf("Output format: %s\n", cfg.Output.Format)
	fmt.Printf("Prompt:        %s\n", promptKind)
	fmt.Printf("Run mode:      %s\n", runMode)
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println()

	for {
		switch strings.ToLower(readLine(r, "Proceed with these settings? (y/n): ")) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Println("Enter y or n.")
		}
	}
}

func printReport(report summarizer.Report, usage gemini.Usage, outputRoot string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("Done")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Total files: %d\n", report.Total)
	fmt.Printf("Processed:   %d\n", report.Processed)
	fmt.Printf("Failed:      %d\n", report.Failed)
	fmt.Printf("Tokens used: %d in / %d out\n", usage.TotalInputTokens, usage.TotalOutputTokens)
	fmt.Printf("Results in:  %s\n", outputRoot)
	fmt.Println(strings.Repeat("=", 40))
}

func readLine(r *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
