package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sysprobe/internal/config"
	"sysprobe/internal/report"
	"sysprobe/internal/service"
)

// Command flags
var (
	formats []string // Extra snapshot formats (yaml, excel)
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the probe once",
	Long: `Run the probe once:
1. Resolve configuration (missing or invalid config falls back to defaults)
2. Collect OS identity and root disk usage
3. Compare free space against disk_alert_percent
4. On alert, log and print the alert and exit 1
5. Otherwise run the diagnostic command, append the summary line and
   write the status snapshot

Examples:
  # Default config file
  sysprobe run

  # Explicit config and an extra YAML snapshot next to the status file
  sysprobe run -c /etc/sysprobe.yaml -f yaml

  # Override the threshold from the environment
  SYSPROBE_DISK_ALERT_PERCENT=15 sysprobe run`,
	Run: runProbe,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "extra snapshot formats (yaml,excel), comma separated")
}

// runProbe executes the probe and exits with the pipeline's exit code.
func runProbe(cmd *cobra.Command, args []string) {
	configPath := GetConfigFile()

	// Config problems are reported through a bootstrap logger before the
	// configured one exists.
	bootstrap := setupLogger("warn", "console", time.Local)
	cfg := config.Resolve(configPath, bootstrap)

	loc, err := cfg.Location()
	if err != nil {
		loc = time.Local
	}

	// Command line --log-level overrides config file setting
	level := cfg.Logging.Level
	if GetLogLevel() != "" {
		level = GetLogLevel()
	}
	logger := setupLogger(level, cfg.Logging.Format, loc)
	logger.Debug().
		Str("config_path", configPath).
		Float64("disk_alert_percent", cfg.DiskAlertPercent).
		Str("log_file", cfg.Output.LogFile).
		Str("status_file", cfg.Output.StatusFile).
		Strs("formats", cfg.Output.Formats).
		Strs("extra_formats", formats).
		Dur("probe_timeout", cfg.Probe.Timeout).
		Msg("configuration resolved")

	reporter, err := report.NewReporter(cfg, report.NewRegistry(), os.Stdout, logger, report.WithExtraFormats(formats...))
	if err != nil {
		fail(logger, err, "failed to initialize reporter")
	}

	inspector, err := service.NewInspector(
		cfg,
		service.NewCollector(logger),
		service.NewProber(cfg.Probe.Timeout, logger),
		service.NewEvaluator(cfg.DiskAlertPercent, logger),
		reporter,
		logger,
		service.WithVersion(Version),
	)
	if err != nil {
		fail(logger, err, "failed to initialize inspector")
	}

	result, err := inspector.Run(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("probe failed")
		fmt.Fprintf(os.Stderr, "❌ Probe failed: %v\n", err)
	}

	os.Exit(result.ExitCode)
}

// fail reports a fatal setup error and exits with the failure code.
func fail(logger zerolog.Logger, err error, msg string) {
	logger.Error().Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(report.ExitFailure)
}

// setupLogger creates a zerolog logger with the specified level and format.
// Timestamps are rendered in loc.
func setupLogger(level string, format string, loc *time.Location) zerolog.Logger {
	// Set log level
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if loc == nil {
		loc = time.Local
	}
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().In(loc)
	}

	// Select output format based on configuration
	var output io.Writer
	if format == "json" {
		output = os.Stderr
	} else {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
