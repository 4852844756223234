package costs_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/clusterbalance/balancer/pkg/api"
	"github.com/clusterbalance/balancer/pkg/costs"
)

func TestDefaultSetHasElevenFunctions(t *testing.T) {
	set := costs.DefaultSet(api.DefaultConfig())
	if len(set) != 11 {
		t.Fatalf("DefaultSet() returned %d functions, want 11", len(set))
	}

	var names []string
	seen := map[string]bool{}
	for _, f := range set {
		if seen[f.Name()] {
			t.Fatalf("duplicate cost function name %q", f.Name())
		}
		seen[f.Name()] = true
		names = append(names, f.Name())
	}
	sort.Strings(names)

	want := []string{
		"Locality", "MemstoreSize", "MoveCost", "PrimaryRegionCountSkew",
		"ReadRequest", "RegionCountSkew", "RegionReplicaHost", "RegionReplicaRack",
		"StoreFileSize", "TableSkew", "WriteRequest",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("DefaultSet() names differ (-want +got):\n%s", diff)
	}
}

func TestDefaultSetUsesConfiguredWeights(t *testing.T) {
	cfg := api.DefaultConfig()
	cfg.Weights.MoveCost = 42
	set := costs.DefaultSet(cfg)
	for _, f := range set {
		if f.Name() == "MoveCost" {
			if got := f.Multiplier(); got != 42 {
				t.Fatalf("MoveCost multiplier = %v, want 42", got)
			}
			return
		}
	}
	t.Fatalf("MoveCost not found in DefaultSet()")
}
