// Package config provides configuration management for the probe.
package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate_DefaultConfig(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("Validate() error = %v, want nil for default config", err)
	}
}

func TestValidate_NilConfig(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("Validate() should return error for nil config")
	}
}

func TestValidate_ThresholdRange(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 20, false},
		{"fractional", 12.5, false},
		{"hundred", 100, false},
		{"negative", -1, true},
		{"above hundred", 100.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.DiskAlertPercent = tt.value

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "diskalertpercent") {
				t.Errorf("error should mention field 'diskalertpercent', got: %s", err.Error())
			}
		})
	}
}

func TestValidate_MissingStatusFile(t *testing.T) {
	cfg := Default()
	cfg.Output.StatusFile = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for missing status file")
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "output.statusfile") {
		t.Errorf("error should mention field 'output.statusfile', got: %s", errStr)
	}
	if !strings.Contains(errStr, "required") {
		t.Errorf("error should mention 'required', got: %s", errStr)
	}
}

func TestValidate_SameLogAndStatusFile(t *testing.T) {
	cfg := Default()
	cfg.Output.StatusFile = cfg.Output.LogFile

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should reject status file equal to log file")
	}
	if !strings.Contains(err.Error(), "must differ") {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestValidate_InvalidFormat(t *testing.T) {
	cfg := Default()
	cfg.Output.Formats = []string{"json", "pdf"}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for invalid format")
	}
	if !strings.Contains(err.Error(), "one of") {
		t.Errorf("error should mention allowed values, got: %s", err.Error())
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"

	if err := Validate(cfg); err == nil {
		t.Error("Validate() should return error for invalid log level")
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"

	if err := Validate(cfg); err == nil {
		t.Error("Validate() should return error for invalid log format")
	}
}

func TestValidate_NegativeProbeTimeout(t *testing.T) {
	cfg := Default()
	cfg.Probe.Timeout = -1 * time.Second

	if err := Validate(cfg); err == nil {
		t.Error("Validate() should return error for negative probe timeout")
	}
}

func TestValidate_InvalidTimezone(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "Invalid/Timezone"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for invalid timezone")
	}
	if !strings.Contains(err.Error(), "timezone") {
		t.Errorf("error should mention timezone, got: %s", err.Error())
	}
}

func TestValidate_ValidTimezones(t *testing.T) {
	for _, tz := range []string{"", "UTC", "Asia/Shanghai", "America/New_York", "Europe/London"} {
		t.Run(tz, func(t *testing.T) {
			cfg := Default()
			cfg.Timezone = tz
			if err := Validate(cfg); err != nil {
				t.Errorf("Validate() error = %v for timezone %q", err, tz)
			}
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.DiskAlertPercent = 150
	cfg.Logging.Level = "loud"
	cfg.Output.LogFile = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error")
	}

	validationErrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(validationErrs) < 3 {
		t.Errorf("expected at least 3 errors, got %d: %v", len(validationErrs), validationErrs)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "output.log_file",
		Tag:     "required",
		Message: "this field is required",
	}

	if err.Error() != "this field is required" {
		t.Errorf("Error() = %v, want 'this field is required'", err.Error())
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "field1", Message: "error 1"},
		{Field: "field2", Message: "error 2"},
	}

	errStr := errs.Error()
	if !strings.Contains(errStr, "field1: error 1") {
		t.Errorf("Error() should contain 'field1: error 1', got: %s", errStr)
	}
	if !strings.Contains(errStr, "field2: error 2") {
		t.Errorf("Error() should contain 'field2: error 2', got: %s", errStr)
	}
}

func TestValidationErrors_Empty(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "" {
		t.Errorf("Error() for empty errors should be empty, got: %s", errs.Error())
	}
}

func TestConfig_Location(t *testing.T) {
	cfg := Default()
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if loc != time.Local {
		t.Errorf("Location() = %v, want time.Local for empty timezone", loc)
	}

	cfg.Timezone = "UTC"
	loc, err = cfg.Location()
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if loc.String() != "UTC" {
		t.Errorf("Location() = %v, want UTC", loc)
	}

	cfg.Timezone = "Nowhere/Land"
	if _, err := cfg.Location(); err == nil {
		t.Error("Location() should fail for unknown timezone")
	}
}
