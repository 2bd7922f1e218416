package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"saas-forecast/internal/model"

	"github.com/BurntSushi/toml"
	"github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

// LoadParameters reads a parameter file on top of base. The format follows the
// extension: .toml, .yaml/.yml, or .json/.hjson. Keys missing from the file keep base's values.
func LoadParameters(path string, base model.ForecastParameters) (model.ForecastParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading parameter file: %w", err)
	}

	p := base
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &p); err != nil {
			return base, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.UnmarshalStrict(data, &p); err != nil {
			return base, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json", ".hjson":
		if err := hjson.Unmarshal(data, &p); err != nil {
			return base, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return base, fmt.Errorf("unsupported parameter file extension %q (use .toml, .yaml, .json or .hjson)", ext)
	}

	return p, nil
}

// SaveParameters writes the parameter set as TOML.
func SaveParameters(path string, p model.ForecastParameters) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating parameter dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating parameter file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(p)
}
