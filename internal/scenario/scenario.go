package scenario

import (
	"fmt"
	"sort"
	"strings"

	"saas-forecast/internal/model"
)

// Preset is a named starting point for the parameter set.
type Preset struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Parameters  model.ForecastParameters `json:"parameters"`
}

var presets = map[string]Preset{}

func register(name, description string, mutate func(p *model.ForecastParameters)) {
	p := model.DefaultParameters()
	mutate(&p)
	presets[name] = Preset{Name: name, Description: description, Parameters: p}
}

func init() {
	register("baseline", "Form defaults: 15% growth, 6% churn, mild demand shocks.", func(p *model.ForecastParameters) {})

	register("aggressive", "Strong acquisition with low churn over a two-year horizon.", func(p *model.ForecastParameters) {
		p.Months = 24
		p.GrowthRatePct = 30
		p.ChurnRatePct = 4
	})

	register("volatile", "Maximum shock sensitivity to widen the P10-P90 band.", func(p *model.ForecastParameters) {
		p.ShockSensitivity = 0.1
		p.SimulationCount = 2000
	})

	register("contraction", "Churn outpaces growth; the customer base shrinks.", func(p *model.ForecastParameters) {
		p.GrowthRatePct = 2
		p.ChurnRatePct = 12
	})
}

// Get returns the preset with the given name (case-insensitive).
func Get(name string) (Preset, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, fmt.Errorf("unknown scenario %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lists the registered presets alphabetically.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All returns every preset ordered by name.
func All() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, n := range Names() {
		out = append(out, presets[n])
	}
	return out
}
