package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"sysprobe/internal/config"
	"sysprobe/internal/model"
	"sysprobe/internal/report"
)

// MetricCollector gathers OS identity and disk capacity.
type MetricCollector interface {
	Collect(ctx context.Context) (*model.OSIdentity, *model.DiskInfo, error)
}

// CommandProber runs the diagnostic command.
type CommandProber interface {
	Probe(ctx context.Context, osName string) (string, *model.CommandResult)
}

// StatusReporter writes the run outputs and decides the exit code.
type StatusReporter interface {
	Report(record *model.StatusRecord) (int, error)
	ReportAlert(decision *model.Decision) (int, error)
}

// RunResult summarizes one probe run.
type RunResult struct {
	Identity *model.OSIdentity
	Disk     *model.DiskInfo
	Decision *model.Decision
	Record   *model.StatusRecord // nil when the run ended in an alert
	ExitCode int
	Version  string
}

// Inspector runs the probe pipeline once: collect, evaluate, then either
// report an alert or probe and report the full status.
type Inspector struct {
	collector MetricCollector
	prober    CommandProber
	evaluator *Evaluator
	reporter  StatusReporter
	timezone  *time.Location
	now       func() time.Time
	version   string
	logger    zerolog.Logger
}

// InspectorOption is a functional option for configuring an Inspector.
type InspectorOption func(*Inspector)

// WithVersion sets the tool version recorded in the run result.
func WithVersion(version string) InspectorOption {
	return func(i *Inspector) {
		i.version = version
	}
}

// WithInspectorClock overrides the time source for the status timestamp.
func WithInspectorClock(now func() time.Time) InspectorOption {
	return func(i *Inspector) {
		i.now = now
	}
}

// NewInspector creates a new Inspector with the given dependencies.
func NewInspector(
	cfg *config.Config,
	collector MetricCollector,
	prober CommandProber,
	evaluator *Evaluator,
	reporter StatusReporter,
	logger zerolog.Logger,
	opts ...InspectorOption,
) (*Inspector, error) {
	if collector == nil || prober == nil || evaluator == nil || reporter == nil {
		return nil, fmt.Errorf("inspector dependencies must not be nil")
	}

	loc := time.Local
	if cfg != nil {
		var err error
		if loc, err = cfg.Location(); err != nil {
			return nil, err
		}
	}

	i := &Inspector{
		collector: collector,
		prober:    prober,
		evaluator: evaluator,
		reporter:  reporter,
		timezone:  loc,
		now:       time.Now,
		version:   "dev",
		logger:    logger.With().Str("component", "inspector").Logger(),
	}

	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// Run executes the pipeline. The returned result carries the exit code even
// when an error is returned, except for collection failures where no
// output is produced.
func (i *Inspector) Run(ctx context.Context) (*RunResult, error) {
	i.logger.Info().
		Str("version", i.version).
		Str("timezone", i.timezone.String()).
		Msg("starting probe")

	result := &RunResult{Version: i.version, ExitCode: report.ExitFailure}

	// Step 1: Collect
	identity, disk, err := i.collector.Collect(ctx)
	if err != nil {
		i.logger.Error().Err(err).Msg("metric collection failed")
		return result, fmt.Errorf("metric collection failed: %w", err)
	}
	result.Identity = identity
	result.Disk = disk

	// Step 2: Evaluate
	result.Decision = i.evaluator.Evaluate(disk)
	if result.Decision.IsAlert() {
		result.ExitCode, err = i.reporter.ReportAlert(result.Decision)
		return result, err
	}

	// Step 3: Probe
	osName := ""
	if identity != nil {
		osName = identity.System
	}
	commandLine, commandResult := i.prober.Probe(ctx, osName)

	// Step 4: Report
	result.Record = model.NewStatusRecord(i.now().In(i.timezone), identity, disk, commandLine, commandResult)
	result.ExitCode, err = i.reporter.Report(result.Record)
	if err != nil {
		return result, err
	}

	i.logger.Info().Int("exit_code", result.ExitCode).Msg("probe completed")
	return result, nil
}
