// Package form collects a parameter set interactively.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"saas-forecast/internal/model"

	"github.com/charmbracelet/huh"
)

// field binds one form input to a parameter.
type field struct {
	key         string
	title       string
	description string
	integer     bool
	value       string
}

func newFields(initial model.ForecastParameters) []*field {
	fields := []*field{
		{key: "start_clients", title: "Starting SaaS clients", description: "At least 1."},
		{key: "months", title: "Forecast horizon (months)", description: "3 to 24.", integer: true},
		{key: "subscription_price", title: "Monthly subscription price ($)"},
		{key: "merchants_per_client", title: "Merchants per client"},
		{key: "upsell_per_merchant", title: "Upsell per merchant ($/month)"},
		{key: "growth_rate_pct", title: "Monthly growth rate (%)", description: "0 to 50."},
		{key: "churn_rate_pct", title: "Monthly churn rate (%)", description: "0 to 20."},
		{key: "shock_sensitivity", title: "Shock sensitivity", description: "0 to 0.1."},
		{key: "simulation_count", title: "Simulations", description: "100 to 2000.", integer: true},
	}
	for _, f := range fields {
		v, _ := initial.FieldValue(f.key)
		f.value = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fields
}

func (f *field) validate(s string) error {
	s = strings.TrimSpace(s)
	if f.integer {
		if _, err := strconv.Atoi(s); err != nil {
			return fmt.Errorf("enter a whole number")
		}
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

// Parse converts raw form values, keyed by option name, into a validated parameter set.
// Options missing from values keep base's values.
func Parse(values map[string]string, base model.ForecastParameters) (model.ForecastParameters, error) {
	p := base
	floats := map[string]*float64{
		"start_clients":        &p.StartClients,
		"subscription_price":   &p.SubscriptionPrice,
		"merchants_per_client": &p.MerchantsPerClient,
		"upsell_per_merchant":  &p.UpsellPerMerchant,
		"growth_rate_pct":      &p.GrowthRatePct,
		"churn_rate_pct":       &p.ChurnRatePct,
		"shock_sensitivity":    &p.ShockSensitivity,
	}
	ints := map[string]*int{
		"months":           &p.Months,
		"simulation_count": &p.SimulationCount,
	}

	for key := range values {
		if floats[key] == nil && ints[key] == nil {
			return base, fmt.Errorf("unknown option %q", key)
		}
	}

	for _, r := range model.Ranges {
		key := r.Field
		raw, ok := values[key]
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		switch {
		case floats[key] != nil:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return base, &model.ValidationError{Field: key, Reason: fmt.Sprintf("not a number: %q", raw)}
			}
			*floats[key] = v
		case ints[key] != nil:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return base, &model.ValidationError{Field: key, Reason: fmt.Sprintf("not a whole number: %q", raw)}
			}
			*ints[key] = v
		}
	}

	return model.Validate(p)
}

// Run shows the parameter form and returns the submitted parameters.
func Run(initial model.ForecastParameters) (model.ForecastParameters, error) {
	fields := newFields(initial)

	inputs := make([]huh.Field, 0, len(fields))
	for _, f := range fields {
		inputs = append(inputs, huh.NewInput().
			Title(f.title).
			Description(f.description).
			Value(&f.value).
			Validate(f.validate))
	}

	confirmed := true
	form := huh.NewForm(
		huh.NewGroup(inputs[:5]...).Title("Business"),
		huh.NewGroup(inputs[5:]...).Title("Dynamics"),
		huh.NewGroup(huh.NewConfirm().Title("Run Forecast?").Value(&confirmed)),
	)
	if err := form.Run(); err != nil {
		return initial, fmt.Errorf("parameter form: %w", err)
	}
	if !confirmed {
		return initial, huh.ErrUserAborted
	}

	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.key] = f.value
	}
	return Parse(values, initial)
}
