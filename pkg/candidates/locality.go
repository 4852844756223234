package candidates

import (
	"golang.org/x/exp/rand"

	"github.com/clusterbalance/balancer/pkg/model"
)

// Locality picks a random server, finds its worst-locality region, and
// proposes moving that region to the least-loaded server that appears in
// the region's ranked locations (spec §4.3).
type Locality struct{}

func (Locality) Name() string { return "Locality" }

func (Locality) Generate(m *model.ClusterModel, rng *rand.Rand) model.Action {
	n := m.NumServers()
	if n == 0 {
		return model.Null
	}
	s := rng.Intn(n)
	r := m.LowestLocalityRegionOn(s)
	if r < 0 {
		return model.Null
	}
	if !m.HasLocationData(r) {
		return model.Null
	}
	target := m.LeastLoadedServerWithLocalityFor(r, s)
	if target < 0 {
		return model.Null
	}
	return model.NewMove(r, s, target)
}
