package service

import (
	"testing"

	"github.com/rs/zerolog"

	"sysprobe/internal/model"
)

func diskWithFreePercent(p float64) *model.DiskInfo {
	return &model.DiskInfo{FreePercent: p}
}

// =============================================================================
// TestNewEvaluator
// =============================================================================

func TestNewEvaluator(t *testing.T) {
	e := NewEvaluator(20, zerolog.Nop())
	if e == nil {
		t.Fatal("NewEvaluator() returned nil")
	}
	if e.Threshold() != 20 {
		t.Errorf("Threshold() = %v, want 20", e.Threshold())
	}
}

// =============================================================================
// TestEvaluator_Evaluate
// =============================================================================

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		name        string
		threshold   float64
		freePercent float64
		want        model.DecisionLevel
	}{
		{"well above threshold", 20, 25, model.DecisionOK},
		{"just below threshold", 20, 19.99, model.DecisionAlert},
		{"exactly at threshold", 20, 20, model.DecisionOK},
		{"far below threshold", 20, 10, model.DecisionAlert},
		{"zero threshold never alerts", 0, 0, model.DecisionOK},
		{"full threshold alerts on partial disk", 100, 99.99, model.DecisionAlert},
		{"full threshold with empty disk", 100, 100, model.DecisionOK},
		{"fractional threshold", 12.5, 12.49, model.DecisionAlert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvaluator(tt.threshold, zerolog.Nop())
			got := e.Evaluate(diskWithFreePercent(tt.freePercent))

			if got.Level != tt.want {
				t.Errorf("Evaluate(%v) level = %v, want %v", tt.freePercent, got.Level, tt.want)
			}
			if got.Threshold != tt.threshold {
				t.Errorf("Threshold = %v, want %v", got.Threshold, tt.threshold)
			}
			if got.FreePercent != tt.freePercent {
				t.Errorf("FreePercent = %v, want %v", got.FreePercent, tt.freePercent)
			}
		})
	}
}

func TestEvaluator_Evaluate_NilDisk(t *testing.T) {
	got := NewEvaluator(20, zerolog.Nop()).Evaluate(nil)
	if !got.IsAlert() {
		t.Errorf("Evaluate(nil) level = %v, want alert", got.Level)
	}
	if got.FreePercent != 0 {
		t.Errorf("FreePercent = %v, want 0", got.FreePercent)
	}
}

func TestEvaluator_Evaluate_AlertMessage(t *testing.T) {
	got := NewEvaluator(20, zerolog.Nop()).Evaluate(diskWithFreePercent(10))

	want := "🚨 ALERT: Disk space below 20%! (free 10%)"
	if got.Message() != want {
		t.Errorf("Message() = %q, want %q", got.Message(), want)
	}
}
