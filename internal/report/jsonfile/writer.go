// Package jsonfile writes the status snapshot as indented JSON.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"io"

	"sysprobe/internal/fileutil"
	"sysprobe/internal/model"
)

// Writer implements report.StatusWriter for JSON format.
type Writer struct{}

// NewWriter creates a new JSON status writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "json"
}

// Extension returns the file extension for this writer.
func (w *Writer) Extension() string {
	return ".json"
}

// Write serializes the record with 2-space indentation in struct field order.
func (w *Writer) Write(record *model.StatusRecord, outputPath string) error {
	if record == nil {
		return fmt.Errorf("status record is nil")
	}

	return fileutil.WriteAtomic(outputPath, 0644, func(out io.Writer) error {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return nil
	})
}
