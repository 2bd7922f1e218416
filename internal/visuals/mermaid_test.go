package visuals

import (
	"strings"
	"testing"

	"saas-forecast/internal/model"
)

func sampleResult() *model.ForecastResult {
	return &model.ForecastResult{
		Baseline: model.Baseline{
			Revenue:    model.MonthlySeries{100, 110, 121},
			Cumulative: model.MonthlySeries{100, 210, 331},
		},
		Stochastic: model.AggregateStats{
			Mean:           model.MonthlySeries{101, 112, 125},
			Low:            model.MonthlySeries{95, 100, 105},
			High:           model.MonthlySeries{108, 124, 140},
			CumulativeMean: model.MonthlySeries{101, 213, 338},
		},
	}
}

func TestGenerateRevenueChart(t *testing.T) {
	chart := GenerateRevenueChart(sampleResult())

	if !strings.HasPrefix(chart, "```mermaid\nxychart-beta\n") {
		t.Fatalf("Expected a mermaid xychart, got %q", chart)
	}
	if got := strings.Count(chart, "    line ["); got != 4 {
		t.Errorf("Expected 4 lines, got %d", got)
	}
	if !strings.Contains(chart, "x-axis \"Month\" [1, 2, 3]") {
		t.Errorf("Expected month labels, got %q", chart)
	}
	if !strings.Contains(chart, "y-axis \"MRR ($)\" 0 --> 15") {
		t.Errorf("Expected y-axis headroom above 140, got %q", chart)
	}
}

func TestGenerateCumulativeChart(t *testing.T) {
	chart := GenerateCumulativeChart(sampleResult())
	if got := strings.Count(chart, "    line ["); got != 2 {
		t.Errorf("Expected 2 lines, got %d", got)
	}
	if GenerateCumulativeChart(nil) != "" {
		t.Errorf("Expected empty chart for nil result")
	}
}

func TestGenerateEndingDistributionChart(t *testing.T) {
	dist := model.Distribution{Edges: []float64{900, 1500, 2100}, Counts: []int{4, 6}}
	chart := GenerateEndingDistributionChart(dist)

	if !strings.Contains(chart, `x-axis ["900", "1.5K"]`) {
		t.Errorf("Expected compact bucket labels, got %q", chart)
	}
	if !strings.Contains(chart, "bar [4, 6]") {
		t.Errorf("Expected bar values, got %q", chart)
	}
	if GenerateEndingDistributionChart(model.Distribution{}) != "" {
		t.Errorf("Expected empty chart for empty distribution")
	}
}
