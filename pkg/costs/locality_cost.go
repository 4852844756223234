package costs

import "github.com/clusterbalance/balancer/pkg/model"

// Locality penalizes regions sitting on a server with poor data locality.
// A region with no location data at all contributes the maximum penalty
// (1), per spec §4.2's documented fallback for missing oracle input.
type Locality struct {
	weight float64
	m      *model.ClusterModel

	perRegion []float64 // perRegion[r] = 1 - locality(r, currentServer(r))
	sum       float64
}

// NewLocality returns a Locality cost function with the given weight.
func NewLocality(weight float64) *Locality {
	return &Locality{weight: weight}
}

func (c *Locality) Name() string { return "Locality" }

func (c *Locality) Init(m *model.ClusterModel) {
	c.m = m
	c.perRegion = make([]float64, m.NumRegions())
	c.sum = 0
	for r := range c.perRegion {
		v := c.contribution(r, m.RegionToServer(r))
		c.perRegion[r] = v
		c.sum += v
	}
}

func (c *Locality) contribution(region, server int) float64 {
	if server < 0 {
		return 1
	}
	if !c.m.HasLocationData(region) {
		return 1
	}
	return 1 - c.m.LocalityOf(region, server)
}

func (c *Locality) PostAction(a model.Action) {
	dispatch(a, c.regionMoved, c.regionSwapped)
}

func (c *Locality) regionMoved(region, _, to int) {
	v := c.contribution(region, to)
	c.sum += v - c.perRegion[region]
	c.perRegion[region] = v
}

func (c *Locality) regionSwapped(regionA, _, regionB, _ int) {
	// The model has already applied the swap; read each region's new
	// server directly rather than re-deriving it from the pre-swap args.
	c.regionMoved(regionA, 0, c.m.RegionToServer(regionA))
	c.regionMoved(regionB, 0, c.m.RegionToServer(regionB))
}

func (c *Locality) Cost() float64 {
	n := c.m.NumRegions()
	if n == 0 {
		return 0
	}
	return clamp(c.sum/float64(n), 0, 1)
}

func (c *Locality) IsNeeded() bool { return true }

func (c *Locality) Multiplier() float64 { return c.weight }
