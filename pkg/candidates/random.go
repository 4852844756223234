package candidates

import (
	"golang.org/x/exp/rand"

	"github.com/clusterbalance/balancer/pkg/model"
)

// Random picks two distinct servers uniformly and applies the random-region
// dance to each (spec §4.3).
type Random struct{}

func (Random) Name() string { return "Random" }

func (Random) Generate(m *model.ClusterModel, rng *rand.Rand) model.Action {
	a, b, ok := twoDistinctServers(m, rng)
	if !ok {
		return model.Null
	}
	return randomRegionDance(m, rng, a, b)
}
