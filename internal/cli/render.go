// Package cli renders forecast results for the terminal.
package cli

import (
	"fmt"
	"strings"

	"saas-forecast/internal/model"
	"saas-forecast/internal/report"
	"saas-forecast/internal/scenario"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBorder = lipgloss.Color("#9CBCF2")
	colorTitle  = lipgloss.Color("#1F3B70")
	colorAccent = lipgloss.Color("#2A6FD3")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorWarn   = lipgloss.Color("#DA702C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	labelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarn)
)

// RenderSummary renders the headline metrics and the insight.
func RenderSummary(result *model.ForecastResult) string {
	s := result.Summary

	rows := [][2]string{
		{"Starting MRR", report.FormatCurrency(s.StartingMRR)},
		{fmt.Sprintf("%d-Month Projected MRR", s.Months), report.FormatCurrency(s.EndingMRR)},
		{"Annual Run-Rate", report.FormatCurrency(s.AnnualRunRate)},
		{"Stochastic Uplift", report.FormatUplift(s.UpliftPct)},
		{"Growth / Churn", report.FormatRate(s.GrowthRatePct) + " / " + report.FormatRate(s.ChurnRatePct)},
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Hybrid SaaS Forecast"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", width, r[0])))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Insight"))
	b.WriteString("\n  ")
	b.WriteString(result.Insight)
	b.WriteString("\n")

	for _, w := range result.Warnings {
		b.WriteString(warnStyle.Render("  ! " + w))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMonthlyTable renders one row per month with both models and the P10-P90 band.
func RenderMonthlyTable(result *model.ForecastResult) string {
	headers := []string{"Month", "Deterministic", "Stoch. Mean", "P10", "P90", "Cumulative", "Cum. Mean"}
	rows := make([][]string, len(result.Baseline.Revenue))
	for m := range rows {
		rows[m] = []string{
			fmt.Sprintf("%d", m+1),
			report.FormatCurrency(result.Baseline.Revenue[m]),
			report.FormatCurrency(result.Stochastic.Mean[m]),
			report.FormatCurrency(result.Stochastic.Low[m]),
			report.FormatCurrency(result.Stochastic.High[m]),
			report.FormatCurrency(result.Baseline.Cumulative[m]),
			report.FormatCurrency(result.Stochastic.CumulativeMean[m]),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	var b strings.Builder
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = fmt.Sprintf("%*s", widths[i], h)
	}
	b.WriteString(headerStyle.Render(strings.Join(cells, "  ")))
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%*s", widths[i], cell)
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderScenarios lists the presets with their headline options.
func RenderScenarios(presets []scenario.Preset) string {
	width := 0
	for _, p := range presets {
		width = max(width, len(p.Name))
	}

	var b strings.Builder
	for _, p := range presets {
		b.WriteString(valueStyle.Render(fmt.Sprintf("%-*s", width, p.Name)))
		b.WriteString("  ")
		b.WriteString(p.Description)
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%*s  %d months, growth %s, churn %s, shock %.2f, %d trials",
			width, "",
			p.Parameters.Months,
			report.FormatRate(p.Parameters.GrowthRatePct),
			report.FormatRate(p.Parameters.ChurnRatePct),
			p.Parameters.ShockSensitivity,
			p.Parameters.SimulationCount)))
		b.WriteString("\n")
	}
	return b.String()
}
