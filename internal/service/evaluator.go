package service

import (
	"github.com/rs/zerolog"

	"sysprobe/internal/model"
)

// Evaluator compares free disk space against the alert threshold.
type Evaluator struct {
	threshold float64 // Minimum free percent before alerting
	logger    zerolog.Logger
}

// NewEvaluator creates a new Evaluator with the given free-space threshold.
func NewEvaluator(threshold float64, logger zerolog.Logger) *Evaluator {
	return &Evaluator{
		threshold: threshold,
		logger:    logger.With().Str("component", "evaluator").Logger(),
	}
}

// Threshold returns the configured threshold.
func (e *Evaluator) Threshold() float64 {
	return e.threshold
}

// Evaluate classifies the disk snapshot. Missing data is treated as 0% free.
func (e *Evaluator) Evaluate(disk *model.DiskInfo) *model.Decision {
	freePercent := 0.0
	if disk != nil {
		freePercent = disk.FreePercent
	} else {
		e.logger.Warn().Msg("no disk data to evaluate")
	}

	decision := model.NewDecision(freePercent, e.threshold)

	e.logger.Debug().
		Str("level", string(decision.Level)).
		Float64("free_percent", decision.FreePercent).
		Float64("threshold", decision.Threshold).
		Msg("evaluation completed")

	return decision
}
