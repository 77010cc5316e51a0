package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"sysprobe/internal/config"
	"sysprobe/internal/model"
)

// Process exit codes.
const (
	ExitOK      = 0 // Normal completion
	ExitAlert   = 1 // Free disk space below the alert threshold
	ExitFailure = 2 // Collection or output failure
)

// primaryFormat is always written to the configured status file.
const primaryFormat = "json"

// Reporter writes the outputs of a run and decides its exit code.
type Reporter struct {
	audit      *AuditLog
	statusPath string
	formats    []string
	registry   *Registry
	out        io.Writer
	logger     zerolog.Logger
}

// ReporterOption is a functional option for configuring a Reporter.
type ReporterOption func(*Reporter)

// WithClock overrides the time source used for audit log timestamps.
func WithClock(now func() time.Time) ReporterOption {
	return func(r *Reporter) {
		r.audit.now = now
	}
}

// WithExtraFormats adds snapshot formats on top of the configured ones.
func WithExtraFormats(formats ...string) ReporterOption {
	return func(r *Reporter) {
		r.formats = append(r.formats, formats...)
	}
}

// NewReporter creates a Reporter from the output configuration.
// Relative paths are resolved against the working directory.
// Console text goes to out (os.Stdout when nil).
func NewReporter(cfg *config.Config, registry *Registry, out io.Writer, logger zerolog.Logger, opts ...ReporterOption) (*Reporter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if registry == nil {
		registry = NewRegistry()
	}
	if out == nil {
		out = os.Stdout
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	logPath, err := filepath.Abs(cfg.Output.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	statusPath, err := filepath.Abs(cfg.Output.StatusFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve status path: %w", err)
	}


	r := &Reporter{
		audit:      NewAuditLog(logPath, func() time.Time { return time.Now().In(loc) }),
		statusPath: statusPath,
		formats:    append([]string(nil), cfg.Output.Formats...),
		registry:   registry,
		out:        out,
		logger:     logger.With().Str("component", "reporter").Logger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	for _, format := range r.formats {
		if !registry.Has(format) {
			return nil, fmt.Errorf("unsupported status format %q", format)
		}
	}

	return r, nil
}

// LogPath returns the resolved audit log path.
func (r *Reporter) LogPath() string {
	return r.audit.Path()
}

// StatusPath returns the resolved status file path.
func (r *Reporter) StatusPath() string {
	return r.statusPath
}

// Report appends the summary line, replaces the status file and prints a
// confirmation. Any failure to write the log or the status file is fatal.
func (r *Reporter) Report(record *model.StatusRecord) (int, error) {
	if record == nil {
		return ExitFailure, fmt.Errorf("status record is nil")
	}

	if err := r.audit.Append(SummaryLine(record)); err != nil {
		r.logger.Error().Err(err).Str("path", r.LogPath()).Msg("failed to append log line")
		return ExitFailure, err
	}

	primary, err := r.registry.Get(primaryFormat)
	if err != nil {
		return ExitFailure, err
	}
	if err := primary.Write(record, r.statusPath); err != nil {
		r.logger.Error().Err(err).Str("path", r.statusPath).Msg("failed to write status file")
		return ExitFailure, fmt.Errorf("failed to write status file: %w", err)
	}
	r.logger.Debug().Str("path", r.statusPath).Msg("status file written")

	extras := r.writeExtraFormats(record)

	fmt.Fprintln(r.out, "✅ Sysinfo captured.")
	fmt.Fprintf(r.out, "   Log:    %s\n", r.LogPath())
	fmt.Fprintf(r.out, "   Status: %s\n", r.statusPath)
	for _, path := range extras {
		fmt.Fprintf(r.out, "           %s\n", path)
	}

	return ExitOK, nil
}

// ReportAlert appends and prints the alert message. No status file is written.
func (r *Reporter) ReportAlert(decision *model.Decision) (int, error) {
	if decision == nil {
		return ExitFailure, fmt.Errorf("decision is nil")
	}

	msg := decision.Message()
	logErr := r.audit.Append(msg)
	fmt.Fprintln(r.out, msg)

	if logErr != nil {
		r.logger.Error().Err(logErr).Str("path", r.LogPath()).Msg("failed to append alert line")
		return ExitFailure, logErr
	}

	r.logger.Warn().
		Float64("free_percent", decision.FreePercent).
		Float64("threshold", decision.Threshold).
		Msg("disk space below threshold")

	return ExitAlert, nil
}

// writeExtraFormats writes the non-JSON snapshot formats next to the status file.
// Failures are logged and reported on the console but do not fail the run.
func (r *Reporter) writeExtraFormats(record *model.StatusRecord) []string {
	var written []string
	seen := map[string]bool{primaryFormat: true}

	for _, format := range r.formats {
		w, err := r.registry.Get(format)
		if err != nil || seen[w.Format()] {
			continue
		}
		seen[w.Format()] = true

		path := SiblingPath(r.statusPath, w.Extension())
		if path == r.statusPath {
			r.logger.Warn().Str("format", w.Format()).Str("path", path).Msg("snapshot would overwrite status file, skipped")
			continue
		}
		if err := w.Write(record, path); err != nil {
			r.logger.Error().Err(err).Str("format", w.Format()).Str("path", path).Msg("failed to write status snapshot")
			fmt.Fprintf(r.out, "   ❌ %s snapshot failed: %v\n", w.Format(), err)
			continue
		}

		r.logger.Debug().Str("format", w.Format()).Str("path", path).Msg("status snapshot written")
		written = append(written, path)
	}

	return written
}

// SummaryLine formats the normal-completion audit log message.
func SummaryLine(record *model.StatusRecord) string {
	freePercent := "n/a"
	if record.Disk != nil {
		freePercent = model.FormatPercent(record.Disk.FreePercent)
	}
	return fmt.Sprintf("Sysinfo collected on %s %s | Go %s | Disk free %s%%",
		record.System, record.Release, strings.TrimPrefix(record.GoVersion, "go"), freePercent)
}

// SiblingPath swaps the extension of path for ext.
func SiblingPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
