package model

import "time"

// MonthlySeries holds one value per forecast month; index 0 is month 1.
type MonthlySeries []float64

// Last returns the final month's value, or 0 for an empty series.
func (s MonthlySeries) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Baseline is the deterministic projection.
type Baseline struct {
	Revenue    MonthlySeries `json:"revenue"`
	Cumulative MonthlySeries `json:"cumulative"`
	// Clients has Months+1 entries: the starting count followed by the count after each month.
	Clients []float64 `json:"clients"`
}

// AggregateStats is the per-month reduction of the stochastic ensemble.
type AggregateStats struct {
	Mean           MonthlySeries `json:"mean"`
	Low            MonthlySeries `json:"p10"`
	Median         MonthlySeries `json:"p50"`
	High           MonthlySeries `json:"p90"`
	CumulativeMean MonthlySeries `json:"cumulative_mean"`
	Ending         Distribution  `json:"ending_distribution"`
}

// Distribution buckets the final-month revenue of every trial.
// Edges has len(Counts)+1 entries; bucket i covers [Edges[i], Edges[i+1]).
type Distribution struct {
	Edges     []float64 `json:"edges"`
	Counts    []int     `json:"counts"`
	Collapsed int       `json:"collapsed"` // trials whose customer base reached zero
}

// SummaryMetrics is the stable structure handed to the report exporter.
type SummaryMetrics struct {
	StartingMRR   float64 `json:"starting_mrr"`
	EndingMRR     float64 `json:"ending_mrr"`
	AnnualRunRate float64 `json:"annual_run_rate"`
	UpliftPct     float64 `json:"uplift_pct"`
	GrowthRatePct float64 `json:"growth_rate_pct"`
	ChurnRatePct  float64 `json:"churn_rate_pct"`
	Months        int     `json:"months"`
	Insight       string  `json:"insight"`
}

// ForecastResult is the terminal output of one forecast request.
type ForecastResult struct {
	RunID       string             `json:"run_id"`
	Seed        uint64             `json:"seed"`
	Parameters  ForecastParameters `json:"parameters"`
	Baseline    Baseline           `json:"baseline"`
	Stochastic  AggregateStats     `json:"stochastic"`
	UpliftPct   float64            `json:"uplift_pct"`
	Insight     string             `json:"insight"`
	Summary     SummaryMetrics     `json:"summary"`
	Warnings    []string           `json:"warnings,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// NewSummary derives the exporter metrics from the deterministic baseline.
func NewSummary(p ForecastParameters, b Baseline, upliftPct float64, insight string) SummaryMetrics {
	var start float64
	if len(b.Revenue) > 0 {
		start = b.Revenue[0]
	}
	end := b.Revenue.Last()
	return SummaryMetrics{
		StartingMRR:   start,
		EndingMRR:     end,
		AnnualRunRate: end * 12,
		UpliftPct:     upliftPct,
		GrowthRatePct: p.GrowthRatePct,
		ChurnRatePct:  p.ChurnRatePct,
		Months:        p.Months,
		Insight:       insight,
	}
}
