// Package model provides data models for the probe.
package model

import (
	"fmt"
	"strconv"
)

// DecisionLevel is the outcome of the threshold check.
type DecisionLevel string

const (
	DecisionOK    DecisionLevel = "ok"
	DecisionAlert DecisionLevel = "alert"
)

// Decision is the result of comparing free space against the alert threshold.
type Decision struct {
	Level       DecisionLevel `json:"level"`
	Threshold   float64       `json:"threshold"`    // Configured minimum free percent
	FreePercent float64       `json:"free_percent"` // Observed free percent
}

// NewDecision evaluates freePercent against threshold.
// Alert if and only if freePercent is strictly below threshold.
func NewDecision(freePercent, threshold float64) *Decision {
	level := DecisionOK
	if freePercent < threshold {
		level = DecisionAlert
	}
	return &Decision{
		Level:       level,
		Threshold:   threshold,
		FreePercent: freePercent,
	}
}

// IsAlert returns true if the free space is below the threshold.
func (d *Decision) IsAlert() bool {
	return d != nil && d.Level == DecisionAlert
}

// Message returns the human-readable alert text.
func (d *Decision) Message() string {
	return fmt.Sprintf("🚨 ALERT: Disk space below %s%%! (free %s%%)",
		FormatPercent(d.Threshold), FormatPercent(d.FreePercent))
}

// FormatPercent renders a percentage without trailing zeros, e.g. 25, 12.5, 7.25.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
