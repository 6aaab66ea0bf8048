package metrics

import (
	"encoding/json"
	"fmt"
	"os"

	"gpumock/internal/fsutil"
	"gpumock/internal/logging"
)

// Writer handles writing metrics samples to JSONL format
type Writer struct {
	logger *logging.Logger
}

// NewWriter creates a new metrics writer
func NewWriter(logger *logging.Logger) *Writer {
	return &Writer{
		logger: logger,
	}
}

// Write appends a metrics sample as one JSON line
func (w *Writer) Write(sample MetricsSample, path string) error {
	data, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal sample: %w", err)
	}
	data = append(data, '\n')

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fsutil.DefaultFilePermissions) // #nosec G304 -- output path is operator supplied
	if err != nil {
		return fmt.Errorf("failed to open metrics log: %w", err)
	}
	defer fsutil.CloseWithError(file.Close, w.logger, path)

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}

	return nil
}
