// Package reports persists analysis results to the reports directory.
package reports

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

type Writer struct {
	dir    string
	logger *log.Logger
}

func NewWriter(dir string, logger *log.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// SaveJSON writes v as indented JSON under the reports directory and
// returns the file path. With an empty filename a timestamped default of
// the form report_<kind>_YYYY-MM-DD_HHMMSS.json is used.
func (w *Writer) SaveJSON(kind, filename string, v any) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating reports directory: %w", err)
	}

	if filename == "" {
		filename = fmt.Sprintf("report_%s_%s.json", kind, time.Now().Format("2006-01-02_150405"))
	}
	path := filepath.Join(w.dir, filename)

	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", fmt.Errorf("error encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("error writing report: %w", err)
	}

	w.logger.Info("report saved", "kind", kind, "path", path)
	return path, nil
}
