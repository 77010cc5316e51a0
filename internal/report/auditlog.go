package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogTimestampLayout is the timestamp prefix of every audit log line.
const LogTimestampLayout = "2006-01-02 15:04:05"

// AuditLog is an append-only, one-line-per-entry text log shared by all runs.
type AuditLog struct {
	path string
	now  func() time.Time
}

// NewAuditLog creates an audit log writing to path.
func NewAuditLog(path string, now func() time.Time) *AuditLog {
	if now == nil {
		now = time.Now
	}
	return &AuditLog{path: path, now: now}
}

// Path returns the log file path.
func (l *AuditLog) Path() string {
	return l.path
}

// Append writes "[YYYY-MM-DD HH:MM:SS] message" as a single line.
// Existing content is never truncated; the line goes out in one write call.
func (l *AuditLog) Append(message string) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	line := fmt.Sprintf("[%s] %s\n", l.now().Format(LogTimestampLayout), singleLine(message))
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// singleLine folds line breaks so one entry never spans lines.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
