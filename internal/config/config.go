// Package config provides configuration management for the probe.
package config

import (
	"fmt"
	"time"
)

// DefaultDiskAlertPercent is the free-space threshold used when none is configured.
const DefaultDiskAlertPercent = 20.0

// Config is the root configuration structure for the probe.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	DiskAlertPercent float64       `mapstructure:"disk_alert_percent" validate:"gte=0,lte=100"`
	Timezone         string        `mapstructure:"timezone" validate:"timezone"`
	Output           OutputConfig  `mapstructure:"output"`
	Probe            ProbeConfig   `mapstructure:"probe"`
	Logging          LoggingConfig `mapstructure:"logging"`
}

// OutputConfig controls where run artifacts are written.
type OutputConfig struct {
	LogFile    string   `mapstructure:"log_file" validate:"required"`    // Append-only audit log
	StatusFile string   `mapstructure:"status_file" validate:"required"` // Latest-run snapshot (JSON)
	Formats    []string `mapstructure:"formats" validate:"dive,oneof=json yaml excel"`
}

// ProbeConfig controls the diagnostic command.
type ProbeConfig struct {
	// Timeout bounds the diagnostic command. Zero means no bound.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// LoggingConfig contains configurations for operational logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// Default returns the configuration used when no usable config file exists.
func Default() *Config {
	return &Config{
		DiskAlertPercent: DefaultDiskAlertPercent,
		Output: OutputConfig{
			LogFile:    "logs/devops_log.txt",
			StatusFile: "status.json",
			Formats:    []string{"json"},
		},
		Probe: ProbeConfig{
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Location resolves the configured timezone. Empty means host local time.
func (c *Config) Location() (*time.Location, error) {
	if c == nil || c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", c.Timezone, err)
	}
	return loc, nil
}
