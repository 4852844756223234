package api_test

import (
	"testing"

	"github.com/clusterbalance/balancer/pkg/api"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := api.ValidateConfig(api.DefaultConfig()); err != nil {
		t.Fatalf("DefaultConfig() failed validation: %v", err)
	}
}

func TestSetDefaultsPreservesExplicitZero(t *testing.T) {
	cfg := api.Config{MaxTableSkewWeight: 0}
	api.SetDefaults_Config(&cfg)
	if cfg.MaxTableSkewWeight != 0 {
		t.Fatalf("MaxTableSkewWeight = %v, want 0 (explicit default)", cfg.MaxTableSkewWeight)
	}
	if cfg.MaxSteps != api.DefaultMaxSteps {
		t.Fatalf("MaxSteps = %v, want default %v", cfg.MaxSteps, api.DefaultMaxSteps)
	}
}

func TestSetDefaultsFillsZeroWeights(t *testing.T) {
	cfg := api.Config{}
	api.SetDefaults_Config(&cfg)
	if cfg.Weights.MoveCost != api.DefaultWeightMoveCost {
		t.Fatalf("Weights.MoveCost = %v, want default %v", cfg.Weights.MoveCost, api.DefaultWeightMoveCost)
	}
}

func TestValidateConfigRejectsOutOfRangeValues(t *testing.T) {
	base := api.DefaultConfig()

	negativeSteps := base
	negativeSteps.MaxSteps = -1
	if err := api.ValidateConfig(negativeSteps); err == nil {
		t.Fatalf("expected validation error for negative MaxSteps")
	}

	zeroServers := base
	zeroServers.MinServerBalance = 0
	if err := api.ValidateConfig(zeroServers); err == nil {
		t.Fatalf("expected validation error for MinServerBalance < 1")
	}

	negativeMovePercent := base
	negativeMovePercent.MaxMovePercent = -0.1
	if err := api.ValidateConfig(negativeMovePercent); err == nil {
		t.Fatalf("expected validation error for negative MaxMovePercent")
	}

	outOfRangeTableSkew := base
	outOfRangeTableSkew.MaxTableSkewWeight = 2
	if err := api.ValidateConfig(outOfRangeTableSkew); err == nil {
		t.Fatalf("expected validation error for MaxTableSkewWeight > 1")
	}
}
