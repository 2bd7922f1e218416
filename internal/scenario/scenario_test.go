package scenario

import (
	"testing"

	"saas-forecast/internal/model"
)

func TestPresetsAreValid(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			if _, err := model.Validate(p.Parameters); err != nil {
				t.Errorf("Preset %s failed validation: %v", p.Name, err)
			}
			if w := model.CheckRanges(p.Parameters); len(w) != 0 {
				t.Errorf("Preset %s is outside the form ranges: %v", p.Name, w)
			}
		})
	}
}

func TestGet(t *testing.T) {
	p, err := Get(" Aggressive ")
	if err != nil {
		t.Fatalf("Expected preset, got %v", err)
	}
	if p.Parameters.Months != 24 {
		t.Errorf("Expected 24 months, got %d", p.Parameters.Months)
	}

	if _, err := Get("nope"); err == nil {
		t.Errorf("Expected an error for an unknown scenario")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names not sorted: %v", names)
		}
	}
}
