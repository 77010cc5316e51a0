// Package report turns a probe run into its durable outputs: the append-only
// audit log, the status snapshot file(s), console text and the exit code.
package report

import (
	"sysprobe/internal/model"
)

// StatusWriter defines the interface for persisting a status snapshot.
type StatusWriter interface {
	// Write serializes the record and replaces the file at outputPath.
	// Implementations must not leave a partially written file behind.
	Write(record *model.StatusRecord, outputPath string) error

	// Format returns the format identifier for this writer, e.g. "json".
	Format() string

	// Extension returns the file extension including the leading dot.
	Extension() string
}
