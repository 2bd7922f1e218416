package mcp

import (
	"saas-forecast/internal/model"
	"saas-forecast/internal/report"
	"saas-forecast/internal/scenario"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RunForecastInput overrides a scenario (or the form defaults) option by option.
type RunForecastInput struct {
	Scenario           string   `json:"scenario,omitempty" jsonschema:"preset to start from; see list_scenarios"`
	StartClients       *float64 `json:"start_clients,omitempty" jsonschema:"paying clients at the start of the horizon"`
	Months             *int     `json:"months,omitempty" jsonschema:"forecast horizon in months"`
	SubscriptionPrice  *float64 `json:"subscription_price,omitempty" jsonschema:"monthly subscription price per client"`
	MerchantsPerClient *float64 `json:"merchants_per_client,omitempty" jsonschema:"merchants each client brings onto the platform"`
	UpsellPerMerchant  *float64 `json:"upsell_per_merchant,omitempty" jsonschema:"monthly upsell revenue per merchant"`
	GrowthRatePct      *float64 `json:"growth_rate_pct,omitempty" jsonschema:"monthly client growth in percent"`
	ChurnRatePct       *float64 `json:"churn_rate_pct,omitempty" jsonschema:"monthly client churn in percent"`
	ShockSensitivity   *float64 `json:"shock_sensitivity,omitempty" jsonschema:"scale of the random monthly demand shock"`
	SimulationCount    *int     `json:"simulation_count,omitempty" jsonschema:"number of Monte Carlo trials"`
	Seed               *uint64  `json:"seed,omitempty" jsonschema:"fixes the random stream for a reproducible run"`
	IncludeSeries      bool     `json:"include_series,omitempty" jsonschema:"return the monthly baseline and P10/P50/P90 series"`
	Export             bool     `json:"export,omitempty" jsonschema:"write the investor brief, partner sheet and ZIP bundle to the report folder"`
}

// parameters resolves the input against its scenario.
func (in RunForecastInput) parameters() (model.ForecastParameters, error) {
	p := model.DefaultParameters()
	if in.Scenario != "" {
		preset, err := scenario.Get(in.Scenario)
		if err != nil {
			return model.ForecastParameters{}, err
		}
		p = preset.Parameters
	}

	setFloat := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setFloat(&p.StartClients, in.StartClients)
	setFloat(&p.SubscriptionPrice, in.SubscriptionPrice)
	setFloat(&p.MerchantsPerClient, in.MerchantsPerClient)
	setFloat(&p.UpsellPerMerchant, in.UpsellPerMerchant)
	setFloat(&p.GrowthRatePct, in.GrowthRatePct)
	setFloat(&p.ChurnRatePct, in.ChurnRatePct)
	setFloat(&p.ShockSensitivity, in.ShockSensitivity)
	if in.Months != nil {
		p.Months = *in.Months
	}
	if in.SimulationCount != nil {
		p.SimulationCount = *in.SimulationCount
	}
	return p, nil
}

// SeriesOutput carries the monthly series of both models.
type SeriesOutput struct {
	Baseline   model.Baseline       `json:"baseline"`
	Stochastic model.AggregateStats `json:"stochastic"`
}

// RunForecastOutput is the structured result of run_forecast.
type RunForecastOutput struct {
	RunID      string                   `json:"run_id"`
	Seed       uint64                   `json:"seed"`
	Parameters model.ForecastParameters `json:"parameters"`
	Summary    model.SummaryMetrics     `json:"summary"`
	P10Ending  float64                  `json:"p10_ending"`
	P90Ending  float64                  `json:"p90_ending"`
	Warnings   []string                 `json:"warnings,omitempty"`
	Series     *SeriesOutput            `json:"series,omitempty"`
	Bundle     *report.Bundle           `json:"bundle,omitempty"`
	Charts     []string                 `json:"charts,omitempty"`
}

type ListScenariosInput struct{}

type ListScenariosOutput struct {
	Scenarios []scenario.Preset `json:"scenarios"`
}

type ParameterRangesInput struct{}

// ParameterRangesOutput pairs the range table with its JSON schema rendering.
type ParameterRangesOutput struct {
	Ranges []model.Range  `json:"ranges"`
	Schema map[string]any `json:"schema"`
}

func RunForecastTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "run_forecast",
		Description: "Forecast monthly recurring revenue for a SaaS platform. Runs a deterministic projection and a Monte Carlo " +
			"simulation with random demand shocks, and reports the uplift of the simulated mean over the baseline.\n\n" +
			"Unset options come from the chosen scenario, or from the form defaults when no scenario is given. " +
			"Use 'get_parameter_ranges' to see the usual bounds. Values outside them are accepted but produce warnings.",
	}
}

func ListScenariosTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_scenarios",
		Description: "List the named parameter presets accepted by 'run_forecast'.",
	}
}

func ParameterRangesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_parameter_ranges",
		Description: "Get the bounds and defaults of every forecast option, as a table and as a JSON schema.",
	}
}
