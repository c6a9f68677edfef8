package summarizer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Model identifiers carry hyphens and dots that read badly in filenames.
var modelSanitizer = strings.NewReplacer("-", "_", ".", "_")

// OutputPath derives the destination for a summary. The directory structure
// below inputRoot is mirrored under outputRoot and the filename becomes
// {stem}_summary_{sanitizedModel}{ext}. The result depends only on the
// arguments, so re-running a batch overwrites its previous output.
func OutputPath(inputFile, inputRoot, outputRoot, model string) (string, error) {
	rel, err := filepath.Rel(inputRoot, inputFile)
	if err != nil {
		return "", fmt.Errorf("relativize %s against %s: %w", inputFile, inputRoot, err)
	}

	ext := filepath.Ext(rel)
	stem := strings.TrimSuffix(filepath.Base(rel), ext)
	name := fmt.Sprintf("%s_summary_%s%s", stem, modelSanitizer.Replace(model), ext)

	return filepath.Join(outputRoot, filepath.Dir(rel), name), nil
}
