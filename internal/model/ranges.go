package model

import "fmt"

// Range describes the bounds and default the parameter form offers for one option.
// HasMax is false for options that are only bounded below.
type Range struct {
	Field      string  `json:"field"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max,omitempty"`
	HasMax     bool    `json:"has_max"`
	Default    float64 `json:"default,omitempty"`
	HasDefault bool    `json:"has_default"`
	Integer    bool    `json:"integer,omitempty"`
}

// Ranges lists the recognized input options in form order.
var Ranges = []Range{
	{Field: "start_clients", Min: 1},
	{Field: "months", Min: 3, Max: 24, HasMax: true, Default: 12, HasDefault: true, Integer: true},
	{Field: "subscription_price", Min: 0},
	{Field: "merchants_per_client", Min: 0},
	{Field: "upsell_per_merchant", Min: 0},
	{Field: "growth_rate_pct", Min: 0, Max: 50, HasMax: true, Default: 15.0, HasDefault: true},
	{Field: "churn_rate_pct", Min: 0, Max: 20, HasMax: true, Default: 6.0, HasDefault: true},
	{Field: "shock_sensitivity", Min: 0, Max: 0.1, HasMax: true, Default: 0.03, HasDefault: true},
	{Field: "simulation_count", Min: 100, Max: 2000, HasMax: true, Default: 1000, HasDefault: true, Integer: true},
}

// Form defaults for options the form pre-fills.
const (
	DefaultMonths           = 12
	DefaultGrowthRatePct    = 15.0
	DefaultChurnRatePct     = 6.0
	DefaultShockSensitivity = 0.03
	DefaultSimulationCount  = 1000
)

// Example values used when a caller supplies nothing for the options without a default.
const (
	ExampleStartClients       = 5
	ExampleSubscriptionPrice  = 500
	ExampleMerchantsPerClient = 20
	ExampleUpsellPerMerchant  = 15
)

// DefaultParameters returns the form's initial state.
func DefaultParameters() ForecastParameters {
	return ForecastParameters{
		StartClients:       ExampleStartClients,
		Months:             DefaultMonths,
		SubscriptionPrice:  ExampleSubscriptionPrice,
		MerchantsPerClient: ExampleMerchantsPerClient,
		UpsellPerMerchant:  ExampleUpsellPerMerchant,
		GrowthRatePct:      DefaultGrowthRatePct,
		ChurnRatePct:       DefaultChurnRatePct,
		ShockSensitivity:   DefaultShockSensitivity,
		SimulationCount:    DefaultSimulationCount,
	}
}

// FieldValue returns the value of the named option.
func (p ForecastParameters) FieldValue(field string) (float64, bool) {
	switch field {
	case "start_clients":
		return p.StartClients, true
	case "months":
		return float64(p.Months), true
	case "subscription_price":
		return p.SubscriptionPrice, true
	case "merchants_per_client":
		return p.MerchantsPerClient, true
	case "upsell_per_merchant":
		return p.UpsellPerMerchant, true
	case "growth_rate_pct":
		return p.GrowthRatePct, true
	case "churn_rate_pct":
		return p.ChurnRatePct, true
	case "shock_sensitivity":
		return p.ShockSensitivity, true
	case "simulation_count":
		return float64(p.SimulationCount), true
	}
	return 0, false
}

// CheckRanges reports options that fall outside the form ranges.
// These are advisory: the engine accepts any value Validate accepts.
func CheckRanges(p ForecastParameters) []string {
	var warnings []string
	for _, r := range Ranges {
		v, _ := p.FieldValue(r.Field)
		if v < r.Min {
			warnings = append(warnings, fmt.Sprintf("%s=%v is below the usual minimum of %v", r.Field, v, r.Min))
		} else if r.HasMax && v > r.Max {
			warnings = append(warnings, fmt.Sprintf("%s=%v is above the usual maximum of %v", r.Field, v, r.Max))
		}
	}
	return warnings
}
