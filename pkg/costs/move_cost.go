package costs

import "github.com/clusterbalance/balancer/pkg/model"

// MoveCost penalizes regions that have moved away from their initial
// server. It is the one cost function the spec documents as exceeding the
// usual [0, 1] bound: once the moved count passes the move cap it returns
// a large sentinel value (1e6) rather than a normalized cost, guaranteeing
// the search loop never accepts a plan that moves too many regions (spec
// §8 testable property 6, "Move cap").
type MoveCost struct {
	weight         float64
	m              *model.ClusterModel
	maxMovePercent float64

	movedCount int
	moved      []bool // moved[r]: is region r currently off its initial server?
}

// NewMoveCost returns a MoveCost cost function with the given weight and
// the configured maxMovePercent (spec §6).
func NewMoveCost(weight, maxMovePercent float64) *MoveCost {
	return &MoveCost{weight: weight, maxMovePercent: maxMovePercent}
}

func (c *MoveCost) Name() string { return "MoveCost" }

func (c *MoveCost) Init(m *model.ClusterModel) {
	c.m = m
	c.moved = make([]bool, m.NumRegions())
	c.movedCount = 0
	for r := range c.moved {
		if m.RegionToServer(r) != m.InitialRegionToServer(r) {
			c.moved[r] = true
			c.movedCount++
		}
	}
}

func (c *MoveCost) PostAction(a model.Action) {
	dispatch(a, c.regionMoved, c.regionSwapped)
}

func (c *MoveCost) regionMoved(region, _, _ int) {
	c.refresh(region)
}

func (c *MoveCost) regionSwapped(regionA, _, regionB, _ int) {
	c.refresh(regionA)
	c.refresh(regionB)
}

// refresh recomputes region's moved flag against the model's post-mutation
// state and adjusts movedCount by the delta.
func (c *MoveCost) refresh(region int) {
	now := c.m.RegionToServer(region) != c.m.InitialRegionToServer(region)
	if now == c.moved[region] {
		return
	}
	c.moved[region] = now
	if now {
		c.movedCount++
	} else {
		c.movedCount--
	}
}

// MaxMoves returns max(numRegions * maxMovePercent, 600), the move cap.
func (c *MoveCost) MaxMoves() float64 {
	limit := float64(c.m.NumRegions()) * c.maxMovePercent
	if limit < 600 {
		limit = 600
	}
	return limit
}

func (c *MoveCost) Cost() float64 {
	limit := c.MaxMoves()
	if float64(c.movedCount) > limit {
		return 1e6
	}
	if limit == 0 {
		return 0
	}
	return clamp(float64(c.movedCount)/limit, 0, 1)
}

func (c *MoveCost) IsNeeded() bool { return true }

func (c *MoveCost) Multiplier() float64 { return c.weight }
