package costs

import (
	"math"

	"github.com/clusterbalance/balancer/pkg/model"
)

// TableSkew implements the definitive per-table skew cost of spec §4.2.1
// (the source's deprecated second TableSkew implementation is intentionally
// not built — see spec's Open Question). numMoves(t) is recomputed only for
// tables touched by the most recent action; a same-table swap touches no
// table's numMoves, since it leaves every server's per-table count intact.
type TableSkew struct {
	weight    float64
	maxWeight float64 // w_max: maxTableSkewWeight config
	m         *model.ClusterModel

	skewPerTable []float64
}

// NewTableSkew returns a TableSkew cost function with the given weight and
// maxTableSkewWeight (w_max in the §4.2.1 formula).
func NewTableSkew(weight, maxTableSkewWeight float64) *TableSkew {
	return &TableSkew{weight: weight, maxWeight: maxTableSkewWeight}
}

func (c *TableSkew) Name() string { return "TableSkew" }

func (c *TableSkew) Init(m *model.ClusterModel) {
	c.m = m
	c.skewPerTable = make([]float64, m.NumTables())
	for t := range c.skewPerTable {
		c.skewPerTable[t] = c.computeSkew(t)
	}
}

func (c *TableSkew) computeSkew(t int) float64 {
	R := c.m.RegionsOfTable(t)
	S := c.m.NumServers()
	if S == 0 {
		return 0
	}
	min := c.m.MinRegionsIfEvenlyDistributed(t)
	max := c.m.MaxRegionsIfEvenlyDistributed(t)
	numMax := c.m.NumServersWithMaxRegionsIfEvenlyDistributed(t)

	if R == max {
		return 0
	}

	numMaxRemaining := numMax
	numMoves := 0
	for s := 0; s < S; s++ {
		n := c.m.NumRegionsOnServerOfTable(s, t)
		if n >= max && numMaxRemaining > 0 {
			numMoves += n - max
			numMaxRemaining--
		} else if n > min {
			numMoves += n - min
		}
	}
	return float64(numMoves) / float64(R-max)
}

func (c *TableSkew) PostAction(a model.Action) {
	switch a.Kind {
	case model.ActionMove, model.ActionAssign:
		c.refresh(c.m.RegionTable(a.Region))
	case model.ActionSwap:
		tA := c.m.RegionTable(a.Region)
		tB := c.m.RegionTable(a.RegionB)
		if tA != tB {
			c.refresh(tA)
			c.refresh(tB)
		}
	}
}

func (c *TableSkew) refresh(t int) {
	c.skewPerTable[t] = c.computeSkew(t)
}

func (c *TableSkew) Cost() float64 {
	if len(c.skewPerTable) == 0 {
		return 0
	}
	max := 0.0
	sum := 0.0
	for _, skew := range c.skewPerTable {
		if skew > max {
			max = skew
		}
		sum += skew
	}
	avg := sum / float64(len(c.skewPerTable))
	wMax := clamp(c.maxWeight, 0, 1)
	return clamp(math.Sqrt(wMax*max+(1-wMax)*avg), 0, 1)
}

func (c *TableSkew) IsNeeded() bool { return true }

func (c *TableSkew) Multiplier() float64 { return c.weight }
