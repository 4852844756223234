package costs

import (
	"github.com/clusterbalance/balancer/pkg/api"
	"github.com/clusterbalance/balancer/pkg/model"
)

// SampleCost implements the four load-history-driven cost functions of
// spec §4.2: ReadRequest, WriteRequest, MemstoreSize (rates, computed from
// first-differences of the raw counters) and StoreFileSize (an absolute
// per-server sum, not a rate). All four share the same mechanics — a
// per-region scalar precomputed once from load history, aggregated
// per-server and kept incrementally in step with the model — so they're a
// single parameterized type rather than four near-duplicates.
type SampleCost struct {
	name   string
	weight float64
	rate   bool // true: mean of first-differences; false: latest sample value
	value  func(api.LoadSample) float64

	m            *model.ClusterModel
	perRegion    []float64
	perServerSum []float64
}

// NewSampleCost returns a SampleCost named name with the given weight.
// When rate is true, a region's scalar is max(0, mean of first-differences
// of extract(sample) over its load history); when false, it is extract
// applied to the most recent sample (0 with no history either way).
func NewSampleCost(name string, weight float64, rate bool, extract func(api.LoadSample) float64) *SampleCost {
	return &SampleCost{name: name, weight: weight, rate: rate, value: extract}
}

func (c *SampleCost) Name() string { return c.name }

func (c *SampleCost) Init(m *model.ClusterModel) {
	c.m = m
	c.perRegion = make([]float64, m.NumRegions())
	c.perServerSum = make([]float64, m.NumServers())

	for r := range c.perRegion {
		c.perRegion[r] = c.regionValue(r)
		s := m.RegionToServer(r)
		if s >= 0 {
			c.perServerSum[s] += c.perRegion[r]
		}
	}
}

func (c *SampleCost) regionValue(r int) float64 {
	samples := c.m.RegionLoadHistory(r)
	if c.rate {
		if len(samples) < 2 {
			return 0
		}
		sum := 0.0
		for i := 1; i < len(samples); i++ {
			sum += c.value(samples[i]) - c.value(samples[i-1])
		}
		mean := sum / float64(len(samples)-1)
		if mean < 0 {
			return 0
		}
		return mean
	}
	if len(samples) == 0 {
		return 0
	}
	return c.value(samples[len(samples)-1])
}

func (c *SampleCost) PostAction(a model.Action) {
	dispatch(a, c.regionMoved, c.regionSwapped)
}

func (c *SampleCost) regionMoved(region, from, to int) {
	v := c.perRegion[region]
	if from >= 0 {
		c.perServerSum[from] -= v
	}
	if to >= 0 {
		c.perServerSum[to] += v
	}
}

func (c *SampleCost) regionSwapped(regionA, serverA, regionB, serverB int) {
	c.regionMoved(regionA, serverA, serverB)
	c.regionMoved(regionB, serverB, serverA)
}

func (c *SampleCost) Cost() float64 {
	return costFromArray(c.perServerSum)
}

func (c *SampleCost) IsNeeded() bool { return true }

func (c *SampleCost) Multiplier() float64 { return c.weight }
