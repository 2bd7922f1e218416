package visuals

import (
	"fmt"
	"math"
	"strings"

	"saas-forecast/internal/model"
)

// GenerateRevenueChart creates a Mermaid xychart-beta comparing deterministic MRR with
// the stochastic mean and its P10/P90 band.
func GenerateRevenueChart(result *model.ForecastResult) string {
	if result == nil || len(result.Baseline.Revenue) == 0 {
		return ""
	}

	series := []model.MonthlySeries{
		result.Baseline.Revenue,
		result.Stochastic.Mean,
		result.Stochastic.Low,
		result.Stochastic.High,
	}
	return lineChart("Monthly Recurring Revenue", "MRR ($)", series)
}

// GenerateCumulativeChart creates a Mermaid xychart-beta of cumulative revenue for both models.
func GenerateCumulativeChart(result *model.ForecastResult) string {
	if result == nil || len(result.Baseline.Cumulative) == 0 {
		return ""
	}

	series := []model.MonthlySeries{
		result.Baseline.Cumulative,
		result.Stochastic.CumulativeMean,
	}
	return lineChart("Cumulative Revenue", "Revenue ($)", series)
}

// GenerateEndingDistributionChart creates a Mermaid bar chart of final-month MRR across trials.
func GenerateEndingDistributionChart(dist model.Distribution) string {
	if len(dist.Counts) == 0 {
		return ""
	}

	var labels []string
	var values []string
	maxVal := 0
	for i, count := range dist.Counts {
		labels = append(labels, fmt.Sprintf("\"%s\"", compact(dist.Edges[i])))
		values = append(values, fmt.Sprintf("%d", count))
		if count > maxVal {
			maxVal = count
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Ending MRR Distribution\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Trials\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

func lineChart(title, axis string, series []model.MonthlySeries) string {
	months := len(series[0])
	labels := make([]string, months)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}

	maxY := 0.0
	for _, s := range series {
		for _, v := range s {
			maxY = math.Max(maxY, v)
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"%s\"\n", title))
	sb.WriteString(fmt.Sprintf("    x-axis \"Month\" [%s]\n", strings.Join(labels, ", ")))
	// Headroom above the highest line
	sb.WriteString(fmt.Sprintf("    y-axis \"%s\" 0 --> %d\n", axis, int(math.Ceil(maxY*1.1))+1))
	for _, s := range series {
		values := make([]string, len(s))
		for i, v := range s {
			values[i] = fmt.Sprintf("%.0f", v)
		}
		sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	}
	sb.WriteString("```")
	return sb.String()
}

// compact renders large currency values with K/M suffixes for axis labels.
func compact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
