package costs_test

import (
	"testing"

	"github.com/clusterbalance/balancer/pkg/api"
	"github.com/clusterbalance/balancer/pkg/costs"
	"github.com/clusterbalance/balancer/pkg/model"
)

func TestRegionCountSkewAllOnOneServer(t *testing.T) {
	m := buildModel(t, evenServers(2), evenRegions(4),
		map[string][]string{"s0": {"r0", "r1", "r2", "r3"}}, api.DefaultConfig())

	c := costs.NewRegionCountSkew(1)
	c.Init(m)
	if got := c.Cost(); got <= 0 {
		t.Fatalf("fully concentrated cluster should have nonzero skew cost, got %v", got)
	}
}

func TestRegionCountSkewBalanced(t *testing.T) {
	m := buildModel(t, evenServers(2), evenRegions(4),
		map[string][]string{"s0": {"r0", "r1"}, "s1": {"r2", "r3"}}, api.DefaultConfig())

	c := costs.NewRegionCountSkew(1)
	c.Init(m)
	if got := c.Cost(); got != 0 {
		t.Fatalf("evenly split cluster should have zero skew cost, got %v", got)
	}
}

func TestRegionCountSkewIncrementalMatchesRescan(t *testing.T) {
	m := buildModel(t, evenServers(2), evenRegions(4),
		map[string][]string{"s0": {"r0", "r1", "r2", "r3"}}, api.DefaultConfig())

	c := costs.NewRegionCountSkew(1)
	c.Init(m)

	a := model.NewMove(0, 0, 1)
	m.Apply(a)
	c.PostAction(a)

	afterMove := c.Cost()

	fresh := costs.NewRegionCountSkew(1)
	fresh.Init(m)
	if got := fresh.Cost(); got != afterMove {
		t.Fatalf("incremental cost %v diverged from from-scratch recompute %v", afterMove, got)
	}
}
