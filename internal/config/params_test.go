package config

import (
	"os"
	"path/filepath"
	"testing"

	"saas-forecast/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParameters_TOML(t *testing.T) {
	path := writeFile(t, "params.toml", `
start_clients = 12
months = 18
growth_rate_pct = 20.5
`)

	p, err := LoadParameters(path, model.DefaultParameters())
	if err != nil {
		t.Fatalf("LoadParameters failed: %v", err)
	}
	if p.StartClients != 12 || p.Months != 18 || p.GrowthRatePct != 20.5 {
		t.Errorf("Unexpected parameters: %+v", p)
	}
	if p.ChurnRatePct != model.DefaultChurnRatePct {
		t.Errorf("Expected churn to keep its default, got %v", p.ChurnRatePct)
	}
}

func TestLoadParameters_YAML(t *testing.T) {
	path := writeFile(t, "params.yaml", "subscription_price: 250\nsimulation_count: 200\n")

	p, err := LoadParameters(path, model.DefaultParameters())
	if err != nil {
		t.Fatalf("LoadParameters failed: %v", err)
	}
	if p.SubscriptionPrice != 250 || p.SimulationCount != 200 {
		t.Errorf("Unexpected parameters: %+v", p)
	}
}

func TestLoadParameters_HJSON(t *testing.T) {
	path := writeFile(t, "params.hjson", `{
  # comments and unquoted keys are allowed
  churn_rate_pct: 8.5
  months: 9
}`)

	p, err := LoadParameters(path, model.DefaultParameters())
	if err != nil {
		t.Fatalf("LoadParameters failed: %v", err)
	}
	if p.ChurnRatePct != 8.5 || p.Months != 9 {
		t.Errorf("Unexpected parameters: %+v", p)
	}
	if p.GrowthRatePct != model.DefaultGrowthRatePct {
		t.Errorf("Expected growth to keep its default, got %v", p.GrowthRatePct)
	}
}

func TestLoadParameters_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"UnknownExtension", "params.ini", "months=3"},
		{"BadTOML", "params.toml", "months = = 3"},
		{"UnknownYAMLKey", "params.yml", "colour: blue\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			if _, err := LoadParameters(path, model.DefaultParameters()); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}

	if _, err := LoadParameters(filepath.Join(t.TempDir(), "missing.toml"), model.DefaultParameters()); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

func TestSaveParameters_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "params.toml")
	want := model.DefaultParameters()
	want.Months = 9

	if err := SaveParameters(path, want); err != nil {
		t.Fatalf("SaveParameters failed: %v", err)
	}
	got, err := LoadParameters(path, model.ForecastParameters{})
	if err != nil {
		t.Fatalf("LoadParameters failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
