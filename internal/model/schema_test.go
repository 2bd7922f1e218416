package model

import (
	"encoding/json"
	"testing"
)

func TestParameterSchema_Ranges(t *testing.T) {
	schema, err := ParameterSchema()
	if err != nil {
		t.Fatalf("ParameterSchema failed: %v", err)
	}

	months := schema.Properties["months"]
	if months == nil {
		t.Fatal("Expected a months property")
	}
	if months.Minimum == nil || *months.Minimum != 3 {
		t.Errorf("Expected months minimum 3, got %v", months.Minimum)
	}
	if months.Maximum == nil || *months.Maximum != 24 {
		t.Errorf("Expected months maximum 24, got %v", months.Maximum)
	}
	if string(months.Default) != "12" {
		t.Errorf("Expected months default 12, got %s", months.Default)
	}

	start := schema.Properties["start_clients"]
	if start.Maximum != nil {
		t.Errorf("Expected start_clients to be unbounded above, got %v", *start.Maximum)
	}
	if start.Default != nil {
		t.Errorf("Expected start_clients to have no default, got %s", start.Default)
	}

	if _, err := json.Marshal(schema); err != nil {
		t.Errorf("Expected schema to marshal, got %v", err)
	}
}

func TestCheckSchema(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *ForecastParameters)
		wantErr bool
	}{
		{"defaults", func(p *ForecastParameters) {}, false},
		{"horizon too long", func(p *ForecastParameters) { p.Months = 36 }, true},
		{"growth too high", func(p *ForecastParameters) { p.GrowthRatePct = 60 }, true},
		{"too few trials", func(p *ForecastParameters) { p.SimulationCount = 10 }, true},
		{"upper bounds inclusive", func(p *ForecastParameters) {
			p.Months = 24
			p.ChurnRatePct = 20
			p.ShockSensitivity = 0.1
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			err := CheckSchema(p)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
