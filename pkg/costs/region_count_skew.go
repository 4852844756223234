package costs

import "github.com/clusterbalance/balancer/pkg/model"

// RegionCountSkew penalizes uneven region counts across servers. The model
// already maintains regionsPerServer as an O(1)-length sorted array, so
// this function needs no incremental state of its own — Cost is a direct,
// cheap read of the model.
type RegionCountSkew struct {
	weight float64
	m      *model.ClusterModel
}

// NewRegionCountSkew returns a RegionCountSkew cost function with the given weight.
func NewRegionCountSkew(weight float64) *RegionCountSkew {
	return &RegionCountSkew{weight: weight}
}

func (c *RegionCountSkew) Name() string { return "RegionCountSkew" }

func (c *RegionCountSkew) Init(m *model.ClusterModel) { c.m = m }

func (c *RegionCountSkew) PostAction(model.Action) {}

func (c *RegionCountSkew) Cost() float64 {
	stats := make([]float64, c.m.NumServers())
	for s := range stats {
		stats[s] = float64(c.m.NumRegionsOnServer(s))
	}
	return costFromArray(stats)
}

func (c *RegionCountSkew) IsNeeded() bool { return true }

func (c *RegionCountSkew) Multiplier() float64 { return c.weight }
