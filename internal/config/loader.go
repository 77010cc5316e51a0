// Package config provides configuration management for the probe.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ErrConfigNotFound is returned by Load when the config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Load reads configuration from the specified YAML file and environment variables.
// Environment variables take precedence over file values.
// Environment variable format: SYSPROBE_<SECTION>_<KEY> (e.g., SYSPROBE_OUTPUT_STATUS_FILE)
func Load(configPath string) (*Config, error) {
	v, err := readConfig(configPath)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Resolve always returns a usable configuration. A missing, unreadable or
// unparseable file yields the defaults with environment overrides applied.
// A parsed file with invalid values keeps every usable key and resets only
// the invalid ones to their defaults.
func Resolve(configPath string, logger zerolog.Logger) *Config {
	v, err := readConfig(configPath)
	switch {
	case err == nil:
		cfg, decodeErr := decode(v)
		if decodeErr == nil {
			logger.Debug().Str("path", configPath).Msg("configuration loaded")
			return cfg
		}
		logger.Warn().Err(decodeErr).Str("path", configPath).Msg("config file has invalid values, resetting them to defaults")
	case errors.Is(err, ErrConfigNotFound):
		logger.Info().Str("path", configPath).Msg("config file not found, using defaults")
		v = newViper()
	default:
		logger.Warn().Err(err).Str("path", configPath).Msg("config file unusable, using defaults")
		v = newViper()
	}

	return salvage(v, logger)
}

// readConfig returns a viper instance holding the file contents, defaults
// and environment bindings.
func readConfig(configPath string) (*viper.Viper, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return v, nil
}

// newViper creates a viper instance with defaults and environment binding.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SYSPROBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	// Weak decoding would turn true into 1.
	if _, err := toPercent(v.Get("disk_alert_percent")); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalize(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// normalize lower-cases enum-like values so "JSON" and "json" are the same format.
func normalize(cfg *Config) {
	for i, f := range cfg.Output.Formats {
		cfg.Output.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
}

// salvage builds a config key by key. A key whose value is unusable falls
// back to its default without affecting the others. The threshold is kept
// whenever it is a finite number, even outside 0..100.
func salvage(v *viper.Viper, logger zerolog.Logger) *Config {
	d := Default()
	cfg := Default()

	pct, err := toPercent(v.Get("disk_alert_percent"))
	if err != nil {
		logger.Warn().Err(err).Float64("default", d.DiskAlertPercent).Msg("disk_alert_percent unusable, using default")
	} else {
		cfg.DiskAlertPercent = pct
		if pct < 0 || pct > 100 {
			logger.Warn().Float64("disk_alert_percent", pct).Msg("disk_alert_percent outside 0..100")
		}
	}

	cfg.Timezone = keepOr(logger, "timezone", strings.TrimSpace(v.GetString("timezone")), d.Timezone, "timezone")
	cfg.Output.LogFile = keepOr(logger, "output.log_file", v.GetString("output.log_file"), d.Output.LogFile, "required")
	cfg.Output.StatusFile = keepOr(logger, "output.status_file", v.GetString("output.status_file"), d.Output.StatusFile, "required")
	if cfg.Output.LogFile == cfg.Output.StatusFile {
		logger.Warn().Str("path", cfg.Output.StatusFile).Msg("log and status file are the same path, using default paths")
		cfg.Output.LogFile = d.Output.LogFile
		cfg.Output.StatusFile = d.Output.StatusFile
	}
	cfg.Output.Formats = salvageFormats(v.GetStringSlice("output.formats"), d.Output.Formats, logger)

	timeout, err := cast.ToDurationE(v.Get("probe.timeout"))
	if err != nil || timeout < 0 {
		logger.Warn().Err(err).Interface("value", v.Get("probe.timeout")).Msg("probe.timeout unusable, using default")
		timeout = d.Probe.Timeout
	}
	cfg.Probe.Timeout = timeout

	cfg.Logging.Level = keepOr(logger, "logging.level", strings.ToLower(v.GetString("logging.level")), d.Logging.Level, "oneof=debug info warn error")
	cfg.Logging.Format = keepOr(logger, "logging.format", strings.ToLower(v.GetString("logging.format")), d.Logging.Format, "oneof=json console")

	return cfg
}

// keepOr returns value if it passes the validator tag, fallback otherwise.
func keepOr(logger zerolog.Logger, key, value, fallback, tag string) string {
	if err := validate.Var(value, tag); err != nil {
		logger.Warn().Str("key", key).Str("value", value).Str("default", fallback).Msg("invalid config value, using default")
		return fallback
	}
	return value
}

// salvageFormats keeps the recognized formats, dropping the rest.
func salvageFormats(formats, fallback []string, logger zerolog.Logger) []string {
	var kept []string
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if err := validate.Var(f, "oneof=json yaml excel"); err != nil {
			logger.Warn().Str("format", f).Msg("unknown status format ignored")
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return append([]string(nil), fallback...)
	}
	return kept
}

// toPercent converts a raw config value to a finite threshold.
func toPercent(raw interface{}) (float64, error) {
	switch r := raw.(type) {
	case nil:
		return 0, fmt.Errorf("disk_alert_percent is not set")
	case bool:
		return 0, fmt.Errorf("disk_alert_percent is not numeric: %v", raw)
	case string:
		if strings.TrimSpace(r) == "" {
			return 0, fmt.Errorf("disk_alert_percent is empty")
		}
	}
	pct, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("disk_alert_percent is not numeric: %w", err)
	}
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, fmt.Errorf("disk_alert_percent is not a finite number: %v", raw)
	}
	return pct, nil
}

// setDefaults sets default values for all configuration options.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("disk_alert_percent", d.DiskAlertPercent)
	v.SetDefault("timezone", d.Timezone)

	v.SetDefault("output.log_file", d.Output.LogFile)
	v.SetDefault("output.status_file", d.Output.StatusFile)
	v.SetDefault("output.formats", d.Output.Formats)

	v.SetDefault("probe.timeout", d.Probe.Timeout)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
