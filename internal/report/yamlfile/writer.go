// Package yamlfile writes the status snapshot as YAML.
package yamlfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"sysprobe/internal/fileutil"
	"sysprobe/internal/model"
)

// Writer implements report.StatusWriter for YAML format.
type Writer struct{}

// NewWriter creates a new YAML status writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "yaml"
}

// Extension returns the file extension for this writer.
func (w *Writer) Extension() string {
	return ".yaml"
}

// Write serializes the record with 2-space indentation.
func (w *Writer) Write(record *model.StatusRecord, outputPath string) error {
	if record == nil {
		return fmt.Errorf("status record is nil")
	}

	return fileutil.WriteAtomic(outputPath, 0644, func(out io.Writer) error {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		return encoder.Close()
	})
}
