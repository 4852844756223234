package api_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clusterbalance/balancer/pkg/api"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "maxMovePercent: 0.1\nweights:\n  moveCost: 99\n")

	cfg, err := api.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.MaxMovePercent != 0.1 {
		t.Fatalf("MaxMovePercent = %v, want 0.1", cfg.MaxMovePercent)
	}
	if cfg.Weights.MoveCost != 99 {
		t.Fatalf("Weights.MoveCost = %v, want 99", cfg.Weights.MoveCost)
	}
	if cfg.MaxSteps != api.DefaultMaxSteps {
		t.Fatalf("MaxSteps = %v, want default %v", cfg.MaxSteps, api.DefaultMaxSteps)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "minServerBalance: -1\n")

	if _, err := api.LoadConfig(path); err == nil {
		t.Fatalf("expected LoadConfig to reject minServerBalance: -1")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := api.LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Fatalf("expected an error reading a missing file")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture file: %v", err)
	}
}
