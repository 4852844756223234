package api

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadConfig reads a Config from a YAML file, applies defaults to any
// zero-valued field, and validates the result.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading balancer config %q: %w", path, err)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing balancer config %q: %w", path, err)
	}

	SetDefaults_Config(&cfg)
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid balancer config %q: %w", path, err)
	}
	return cfg, nil
}
