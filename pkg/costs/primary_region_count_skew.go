package costs

import "github.com/clusterbalance/balancer/pkg/model"

// PrimaryRegionCountSkew penalizes uneven counts of primary (not
// secondary-replica) regions across servers. Unlike RegionCountSkew, the
// model doesn't track "is this region a primary" aggregated per server, so
// this function keeps its own incremental counter, updated in PostAction.
type PrimaryRegionCountSkew struct {
	weight float64
	m      *model.ClusterModel

	countPerServer []int
	hasReplicas    bool
}

// NewPrimaryRegionCountSkew returns a PrimaryRegionCountSkew cost function
// with the given weight.
func NewPrimaryRegionCountSkew(weight float64) *PrimaryRegionCountSkew {
	return &PrimaryRegionCountSkew{weight: weight}
}

func (c *PrimaryRegionCountSkew) Name() string { return "PrimaryRegionCountSkew" }

func (c *PrimaryRegionCountSkew) Init(m *model.ClusterModel) {
	c.m = m
	c.countPerServer = make([]int, m.NumServers())
	for r := 0; r < m.NumRegions(); r++ {
		if !m.IsPrimary(r) {
			c.hasReplicas = true
			continue
		}
		s := m.RegionToServer(r)
		if s >= 0 {
			c.countPerServer[s]++
		}
	}
}

func (c *PrimaryRegionCountSkew) PostAction(a model.Action) {
	dispatch(a, c.regionMoved, c.regionSwapped)
}

func (c *PrimaryRegionCountSkew) regionMoved(region, from, to int) {
	if !c.m.IsPrimary(region) {
		return
	}
	if from >= 0 {
		c.countPerServer[from]--
	}
	if to >= 0 {
		c.countPerServer[to]++
	}
}

func (c *PrimaryRegionCountSkew) regionSwapped(regionA, serverA, regionB, serverB int) {
	c.regionMoved(regionA, serverA, serverB)
	c.regionMoved(regionB, serverB, serverA)
}

func (c *PrimaryRegionCountSkew) Cost() float64 {
	if !c.hasReplicas {
		return 0
	}
	stats := make([]float64, len(c.countPerServer))
	for i, v := range c.countPerServer {
		stats[i] = float64(v)
	}
	return costFromArray(stats)
}

func (c *PrimaryRegionCountSkew) IsNeeded() bool { return c.hasReplicas }

func (c *PrimaryRegionCountSkew) Multiplier() float64 { return c.weight }
