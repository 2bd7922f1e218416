package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
)

var fieldDescriptions = map[string]string{
	"start_clients":        "Paying clients at the start of the horizon",
	"months":               "Forecast horizon in months",
	"subscription_price":   "Monthly subscription price per client",
	"merchants_per_client": "Merchants each client brings onto the platform",
	"upsell_per_merchant":  "Monthly upsell revenue per merchant",
	"growth_rate_pct":      "Monthly client growth in percent",
	"churn_rate_pct":       "Monthly client churn in percent",
	"shock_sensitivity":    "Scale of the random monthly demand shock",
	"simulation_count":     "Number of Monte Carlo trials",
}

// ParameterSchema returns the JSON schema of ForecastParameters annotated with the form ranges.
func ParameterSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ForecastParameters](nil)
	if err != nil {
		return nil, fmt.Errorf("inferring parameter schema: %w", err)
	}
	schema.Title = "Forecast parameters"

	for _, r := range Ranges {
		prop, ok := schema.Properties[r.Field]
		if !ok {
			return nil, fmt.Errorf("parameter schema has no property %q", r.Field)
		}
		prop.Description = fieldDescriptions[r.Field]
		prop.Minimum = ptr(r.Min)
		if r.HasMax {
			prop.Maximum = ptr(r.Max)
		}
		if r.HasDefault {
			prop.Default = json.RawMessage(strconv.FormatFloat(r.Default, 'f', -1, 64))
		}
	}
	return schema, nil
}

// CheckSchema validates p against ParameterSchema. Unlike CheckRanges it
// fails on the first out-of-range option.
func CheckSchema(p ForecastParameters) error {
	schema, err := ParameterSchema()
	if err != nil {
		return err
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolving parameter schema: %w", err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding parameters: %w", err)
	}
	var instance map[string]any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("decoding parameters: %w", err)
	}

	if err := resolved.Validate(instance); err != nil {
		return fmt.Errorf("parameters outside form ranges: %w", err)
	}
	return nil
}

func ptr(v float64) *float64 {
	return &v
}
