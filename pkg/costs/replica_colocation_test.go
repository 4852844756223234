package costs_test

import (
	"math"
	"testing"

	"github.com/clusterbalance/balancer/pkg/api"
	"github.com/clusterbalance/balancer/pkg/costs"
	"github.com/clusterbalance/balancer/pkg/model"
)

// TestRegionReplicaRackAllColocated is spec §8 scenario 3: four servers
// across two racks, one region with three replicas all on rack R1. Cost
// must start at sqrt(1) == 1 and drop once a replica moves to rack R2.
func TestRegionReplicaRackAllColocated(t *testing.T) {
	servers := [][3]string{
		{"s0", "h0", "R1"}, {"s1", "h1", "R1"},
		{"s2", "h2", "R2"}, {"s3", "h3", "R2"},
	}
	regions := [][3]string{
		{"r0", "t0", ""},
		{"r0b", "t0", "r0"},
		{"r0c", "t0", "r0"},
	}
	assignment := map[string][]string{
		"s0": {"r0", "r0b"},
		"s1": {"r0c"},
	}
	m := buildModel(t, servers, regions, assignment, api.DefaultConfig())

	c := costs.NewRegionReplicaRack(10000)
	c.Init(m)
	if got := c.Cost(); math.Abs(got-1) > 1e-9 {
		t.Fatalf("Cost() with all three replicas on rack R1 = %v, want 1", got)
	}

	a := model.NewMove(2, m.RegionToServer(2), 2) // move r0c onto s2 (rack R2)
	m.Apply(a)
	c.PostAction(a)

	if got := c.Cost(); !(got < 1) {
		t.Fatalf("Cost() after moving a replica to rack R2 = %v, want < 1", got)
	}
}

func TestRegionReplicaHostNotNeededWithoutReplicas(t *testing.T) {
	m := buildModel(t, evenServers(2), evenRegions(2),
		map[string][]string{"s0": {"r0"}, "s1": {"r1"}}, api.DefaultConfig())

	c := costs.NewRegionReplicaHost(100000)
	c.Init(m)
	if c.IsNeeded() {
		t.Fatalf("IsNeeded() should be false with no replicas")
	}
}
