package candidates

import (
	"golang.org/x/exp/rand"

	"github.com/clusterbalance/balancer/pkg/model"
)

// ReplicaRack targets colocated replica groups: it reservoir-samples a
// colocated primary on a random rack, picks one of its secondary replicas,
// and proposes moving it to a server on a different rack. It falls back to
// the host-level equivalent, then to Random, when no colocation is found
// (spec §4.3).
type ReplicaRack struct{}

func (ReplicaRack) Name() string { return "ReplicaRack" }

func (g ReplicaRack) Generate(m *model.ClusterModel, rng *rand.Rand) model.Action {
	if n := m.NumRacks(); n > 0 {
		rack := rng.Intn(n)
		if a, ok := g.tryLevel(m, rng, m.PrimariesPerRack(rack), m.RegionsPerRack(rack), rack, m.ServerRack); ok {
			return a
		}
	}
	if n := m.NumHosts(); n > 0 {
		host := rng.Intn(n)
		if a, ok := g.tryLevel(m, rng, m.PrimariesPerHost(host), m.RegionsPerHost(host), host, m.ServerHost); ok {
			return a
		}
	}
	return Random{}.Generate(m, rng)
}

// tryLevel implements the rack-level algorithm generically over racks or
// hosts: groupID identifies the chosen rack/host, and groupOf maps a server
// to its rack/host index.
func (g ReplicaRack) tryLevel(m *model.ClusterModel, rng *rand.Rand, primaries, regions []int, groupID int, groupOf func(server int) int) (model.Action, bool) {
	primary, ok := reservoirPickRun(primaries, rng)
	if !ok {
		return model.Null, false
	}

	secondaries := make([]int, 0)
	for _, r := range regions {
		if r != primary && m.PrimaryOf(r) == primary {
			secondaries = append(secondaries, r)
		}
	}
	if len(secondaries) == 0 {
		return model.Null, false
	}
	region := secondaries[rng.Intn(len(secondaries))]
	from := m.RegionToServer(region)
	if from < 0 {
		return model.Null, false
	}

	candidates := make([]int, 0)
	for s := 0; s < m.NumServers(); s++ {
		if groupOf(s) != groupID {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return model.Null, false
	}
	to := candidates[rng.Intn(len(candidates))]
	return model.NewMove(region, from, to), true
}
