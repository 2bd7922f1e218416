package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is the sentinel wrapped by every ValidationError.
var ErrInvalidParameter = errors.New("invalid forecast parameter")

// ValidationError names the parameter that blocked a forecast.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameter
}

// ForecastParameters is the immutable input of a single forecast request.
type ForecastParameters struct {
	StartClients       float64 `json:"start_clients" toml:"start_clients" yaml:"start_clients"`
	Months             int     `json:"months" toml:"months" yaml:"months"`
	SubscriptionPrice  float64 `json:"subscription_price" toml:"subscription_price" yaml:"subscription_price"`
	MerchantsPerClient float64 `json:"merchants_per_client" toml:"merchants_per_client" yaml:"merchants_per_client"`
	UpsellPerMerchant  float64 `json:"upsell_per_merchant" toml:"upsell_per_merchant" yaml:"upsell_per_merchant"`
	GrowthRatePct      float64 `json:"growth_rate_pct" toml:"growth_rate_pct" yaml:"growth_rate_pct"`
	ChurnRatePct       float64 `json:"churn_rate_pct" toml:"churn_rate_pct" yaml:"churn_rate_pct"`
	ShockSensitivity   float64 `json:"shock_sensitivity" toml:"shock_sensitivity" yaml:"shock_sensitivity"`
	SimulationCount    int     `json:"simulation_count" toml:"simulation_count" yaml:"simulation_count"`
}

// RevenuePerClient is the monthly revenue one client brings in, subscription plus merchant upsell.
func (p ForecastParameters) RevenuePerClient() float64 {
	return p.SubscriptionPrice + p.MerchantsPerClient*p.UpsellPerMerchant
}

// NetRate is the deterministic per-month multiplier delta (growth minus churn, as a fraction).
func (p ForecastParameters) NetRate() float64 {
	return p.GrowthRatePct/100 - p.ChurnRatePct/100
}

// Validate checks the parameter set and returns it unchanged when it is usable.
// The first offending field in declaration order is reported.
func Validate(p ForecastParameters) (ForecastParameters, error) {
	floats := []struct {
		field string
		value float64
	}{
		{"start_clients", p.StartClients},
		{"subscription_price", p.SubscriptionPrice},
		{"merchants_per_client", p.MerchantsPerClient},
		{"upsell_per_merchant", p.UpsellPerMerchant},
		{"growth_rate_pct", p.GrowthRatePct},
		{"churn_rate_pct", p.ChurnRatePct},
		{"shock_sensitivity", p.ShockSensitivity},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return ForecastParameters{}, &ValidationError{Field: f.field, Value: f.value, Reason: "must be a finite number"}
		}
	}

	switch {
	case p.StartClients < 1:
		return ForecastParameters{}, &ValidationError{Field: "start_clients", Value: p.StartClients, Reason: "must be at least 1"}
	case p.Months < 1:
		return ForecastParameters{}, &ValidationError{Field: "months", Value: float64(p.Months), Reason: "must be at least 1"}
	case p.SubscriptionPrice < 0:
		return ForecastParameters{}, &ValidationError{Field: "subscription_price", Value: p.SubscriptionPrice, Reason: "must not be negative"}
	case p.MerchantsPerClient < 0:
		return ForecastParameters{}, &ValidationError{Field: "merchants_per_client", Value: p.MerchantsPerClient, Reason: "must not be negative"}
	case p.UpsellPerMerchant < 0:
		return ForecastParameters{}, &ValidationError{Field: "upsell_per_merchant", Value: p.UpsellPerMerchant, Reason: "must not be negative"}
	case p.ShockSensitivity < 0:
		return ForecastParameters{}, &ValidationError{Field: "shock_sensitivity", Value: p.ShockSensitivity, Reason: "must not be negative"}
	case p.SimulationCount < 1:
		return ForecastParameters{}, &ValidationError{Field: "simulation_count", Value: float64(p.SimulationCount), Reason: "must be at least 1"}
	}

	return p, nil
}
