package candidates

import (
	"golang.org/x/exp/rand"

	"github.com/clusterbalance/balancer/pkg/model"
)

// LoadSkew targets the heaviest and lightest servers by region count,
// applying the same random-region dance as Random (spec §4.3).
type LoadSkew struct{}

func (LoadSkew) Name() string { return "LoadSkew" }

func (LoadSkew) Generate(m *model.ClusterModel, rng *rand.Rand) model.Action {
	sorted := m.SortedServersByRegionCount()
	if len(sorted) < 2 {
		return model.Null
	}
	lightest := sorted[0]
	heaviest := sorted[len(sorted)-1]
	if lightest == heaviest {
		return model.Null
	}
	return randomRegionDance(m, rng, heaviest, lightest)
}
