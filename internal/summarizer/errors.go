package summarizer

import "fmt"

// ConfigurationError reports an invalid input root. It aborts the batch
// before any file is processed.
type ConfigurationError struct {
	Path   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// SummarizationError reports that the remote call exhausted its retries.
type SummarizationError struct {
	Attempts int
	Err      error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("API request failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}
