package simulation

import (
	"math"
	"testing"
)

func TestCalculateUplift(t *testing.T) {
	tests := []struct {
		name     string
		det      float64
		stoch    float64
		expected float64
	}{
		{"Positive", 1000, 1123, 12.3},
		{"Negative", 1000, 900, -10},
		{"ZeroBaseline", 0, 5000, 0},
		{"NegativeBaseline", -10, 5000, 0},
		{"Equal", 250, 250, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateUplift(tt.det, tt.stoch)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("CalculateUplift(%v, %v) = %v, want %v", tt.det, tt.stoch, got, tt.expected)
			}
		})
	}
}

func TestFormatInsight(t *testing.T) {
	tests := []struct {
		name     string
		uplift   float64
		brand    string
		expected string
	}{
		{"Branded", 12.34, DefaultBrand, "RapidTest.ai outperformed baseline projections by 12.3% through iterative engagement optimization."},
		{"Unbranded", 0, "", "Outperformed baseline projections by 0.0% through iterative engagement optimization."},
		{"Grouped", 1234.56, "Acme", "Acme outperformed baseline projections by 1,234.6% through iterative engagement optimization."},
		{"Negative", -2.26, "Acme", "Acme outperformed baseline projections by -2.3% through iterative engagement optimization."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatInsight(tt.uplift, tt.brand); got != tt.expected {
				t.Errorf("FormatInsight() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAnalyze_GuardIgnoresStochastic(t *testing.T) {
	for _, s := range []float64{0, 1, 1e9} {
		if got := Analyze(0, s, DefaultBrand); got.UpliftPct != 0 {
			t.Errorf("Expected uplift 0 for zero baseline, got %v", got.UpliftPct)
		}
	}
}
