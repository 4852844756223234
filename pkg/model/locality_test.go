package model

import (
	"testing"

	"github.com/clusterbalance/balancer/pkg/api"
	"k8s.io/klog/v2"
)

func fixtureWithLocality(t *testing.T, oracle api.LocalityOracle) *ClusterModel {
	t.Helper()
	servers := map[api.ServerID]api.ServerInfo{
		"a": {ID: "a", Host: "ha", Rack: "r0"},
		"b": {ID: "b", Host: "hb", Rack: "r0"},
	}
	regions := map[api.RegionID]api.RegionInfo{
		"r0": {ID: "r0", Table: "t0"},
	}
	assignment := map[api.ServerID][]api.RegionID{"a": {"r0"}}
	inv := api.Invocation{Assignment: assignment, Regions: regions, Servers: servers, Locality: oracle}
	m, err := New(inv, api.DefaultConfig(), klog.Background())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m
}

func TestLocalityOfWithOracle(t *testing.T) {
	oracle := func(region api.RegionID) []api.ServerLocality {
		return []api.ServerLocality{
			{Server: "b", Fraction: 0.9},
			{Server: "a", Fraction: 0.1},
		}
	}
	m := fixtureWithLocality(t, oracle)
	if !m.HasLocationData(0) {
		t.Fatalf("expected location data to be present")
	}
	if got := m.LocalityOf(0, 1); got != 0.9 {
		t.Fatalf("LocalityOf(r0, b) = %v, want 0.9", got)
	}
	if got := m.LocalityOf(0, 0); got != 0.1 {
		t.Fatalf("LocalityOf(r0, a) = %v, want 0.1", got)
	}
}

func TestLocalityOfWithoutOracle(t *testing.T) {
	m := fixtureWithLocality(t, nil)
	if m.HasLocationData(0) {
		t.Fatalf("expected no location data without an oracle")
	}
}

func TestLeastLoadedServerWithLocalityFor(t *testing.T) {
	oracle := func(region api.RegionID) []api.ServerLocality {
		return []api.ServerLocality{{Server: "a", Fraction: 1}, {Server: "b", Fraction: 0}}
	}
	m := fixtureWithLocality(t, oracle)
	// Server a (index 0) holds the only region; server b is empty and below
	// the cluster mean of 0.5, so it should be preferred once a is excluded.
	target := m.LeastLoadedServerWithLocalityFor(0, 0)
	if target != 1 {
		t.Fatalf("LeastLoadedServerWithLocalityFor = %d, want 1 (server b)", target)
	}
}
