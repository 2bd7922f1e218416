package simulation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultBrand prefixes the insight sentence when no brand is configured.
const DefaultBrand = "RapidTest.ai"

// Insight compares the ensemble against the baseline.
type Insight struct {
	UpliftPct float64 `json:"uplift_pct"`
	Text      string  `json:"text"`
}

// CalculateUplift returns the relative difference of the stochastic cumulative mean S
// over the deterministic cumulative D, in percent. A non-positive D yields 0.
func CalculateUplift(deterministic, stochastic float64) float64 {
	if deterministic <= 0 {
		return 0
	}
	return (stochastic - deterministic) / deterministic * 100
}

// Analyze derives the uplift and the insight sentence from the two final cumulative values.
func Analyze(deterministic, stochastic float64, brand string) Insight {
	uplift := CalculateUplift(deterministic, stochastic)
	return Insight{
		UpliftPct: uplift,
		Text:      FormatInsight(uplift, brand),
	}
}

// FormatInsight renders the headline with the uplift rounded to one decimal and grouped thousands.
func FormatInsight(upliftPct float64, brand string) string {
	printer := message.NewPrinter(language.English)
	if brand == "" {
		return printer.Sprintf("Outperformed baseline projections by %.1f%% through iterative engagement optimization.", upliftPct)
	}
	return printer.Sprintf("%s outperformed baseline projections by %.1f%% through iterative engagement optimization.", brand, upliftPct)
}
