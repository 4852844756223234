package costs

import (
	"math"

	"github.com/clusterbalance/balancer/pkg/model"
)

// replicaColocation implements the shared mechanics behind
// RegionReplicaHost and RegionReplicaRack: sqrt(total / max) colocation
// cost over a grouping level (host or rack), using the sorted-array
// run-length trick of spec §4.1 ("a run of length k contributes (k-1)^2").
type replicaColocation struct {
	weight float64
	m      *model.ClusterModel

	numGroups  func() int
	groupArray func(g int) []int

	maxCost     float64
	hasReplicas bool
}

func (c *replicaColocation) init(m *model.ClusterModel) {
	c.m = m
	c.hasReplicas = false

	// Max possible colocation cost: every replica group fully concentrated
	// in a single group entity, summed over all primary groups. Group size
	// is 1 + (number of secondary replicas sharing that primary).
	groupSize := make(map[int]int, m.NumRegions())
	for r := 0; r < m.NumRegions(); r++ {
		groupSize[m.PrimaryOf(r)]++
		if !m.IsPrimary(r) {
			c.hasReplicas = true
		}
	}
	max := 0.0
	for _, size := range groupSize {
		max += float64((size - 1) * (size - 1))
	}
	c.maxCost = max
}

func (c *replicaColocation) cost() float64 {
	if !c.hasReplicas || c.maxCost == 0 {
		return 0
	}
	total := 0.0
	n := c.numGroups()
	for g := 0; g < n; g++ {
		total += runLengthCost(c.groupArray(g))
	}
	return clamp(math.Sqrt(total/c.maxCost), 0, 1)
}

// runLengthCost sums (k-1)^2 over every run of k equal consecutive values
// in a sorted array.
func runLengthCost(sorted []int) float64 {
	total := 0.0
	i := 0
	for i < len(sorted) {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		run := j - i
		total += float64((run - 1) * (run - 1))
		i = j
	}
	return total
}

// RegionReplicaHost penalizes replicas of the same region colocated on the
// same host.
type RegionReplicaHost struct {
	replicaColocation
}

// NewRegionReplicaHost returns a RegionReplicaHost cost function with the given weight.
func NewRegionReplicaHost(weight float64) *RegionReplicaHost {
	c := &RegionReplicaHost{}
	c.weight = weight
	return c
}

func (c *RegionReplicaHost) Name() string { return "RegionReplicaHost" }

func (c *RegionReplicaHost) Init(m *model.ClusterModel) {
	c.init(m)
	c.numGroups = m.NumHosts
	c.groupArray = m.PrimariesPerHost
}

func (c *RegionReplicaHost) PostAction(model.Action) {}

func (c *RegionReplicaHost) Cost() float64 { return c.cost() }

func (c *RegionReplicaHost) IsNeeded() bool { return c.hasReplicas }

func (c *RegionReplicaHost) Multiplier() float64 { return c.weight }

// RegionReplicaRack penalizes replicas of the same region colocated on the
// same rack.
type RegionReplicaRack struct {
	replicaColocation
}

// NewRegionReplicaRack returns a RegionReplicaRack cost function with the given weight.
func NewRegionReplicaRack(weight float64) *RegionReplicaRack {
	c := &RegionReplicaRack{}
	c.weight = weight
	return c
}

func (c *RegionReplicaRack) Name() string { return "RegionReplicaRack" }

func (c *RegionReplicaRack) Init(m *model.ClusterModel) {
	c.init(m)
	c.numGroups = m.NumRacks
	c.groupArray = m.PrimariesPerRack
}

func (c *RegionReplicaRack) PostAction(model.Action) {}

func (c *RegionReplicaRack) Cost() float64 { return c.cost() }

func (c *RegionReplicaRack) IsNeeded() bool { return c.hasReplicas }

func (c *RegionReplicaRack) Multiplier() float64 { return c.weight }
