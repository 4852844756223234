// Package candidates implements the four candidate generators of spec §4.3.
// Each is a stateless function of the model and an injected randomness
// source, returning a move/swap/noop Action for the search driver to try.
package candidates

import (
	"golang.org/x/exp/rand"

	"github.com/clusterbalance/balancer/pkg/model"
)

// Generator proposes a single Action per invocation. Generators never
// mutate the model themselves; the driver applies and, if rejected,
// inverts whatever Action they return.
type Generator interface {
	Name() string
	Generate(m *model.ClusterModel, rng *rand.Rand) model.Action
}

// DefaultSet returns the four generators of spec §4.3, in the order a
// uniform pick indexes into.
func DefaultSet() []Generator {
	return []Generator{
		Random{},
		LoadSkew{},
		Locality{},
		ReplicaRack{},
	}
}

// randomRegionDance implements the "with probability 0.5, either pick a
// random region on it or pick no region" rule shared by Random and
// LoadSkew, applied independently to two servers a and b. It returns the
// Action those two picks imply: MOVE if exactly one side picked a region,
// SWAP if both did, NULL otherwise.
func randomRegionDance(m *model.ClusterModel, rng *rand.Rand, a, b int) model.Action {
	ra := pickRegionOrNone(m, rng, a)
	rb := pickRegionOrNone(m, rng, b)

	switch {
	case ra >= 0 && rb >= 0:
		return model.NewSwap(ra, a, rb, b)
	case ra >= 0:
		return model.NewMove(ra, a, b)
	case rb >= 0:
		return model.NewMove(rb, b, a)
	default:
		return model.Null
	}
}

// pickRegionOrNone picks a uniformly random region on server s with
// probability 0.5, else returns -1 ("no region").
func pickRegionOrNone(m *model.ClusterModel, rng *rand.Rand, s int) int {
	if rng.Float64() >= 0.5 {
		return -1
	}
	regions := m.RegionsPerServer(s)
	if len(regions) == 0 {
		return -1
	}
	return regions[rng.Intn(len(regions))]
}

// twoDistinctServers returns two distinct server indices chosen uniformly
// at random, or false if fewer than two servers exist.
func twoDistinctServers(m *model.ClusterModel, rng *rand.Rand) (int, int, bool) {
	n := m.NumServers()
	if n < 2 {
		return 0, 0, false
	}
	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}
	return a, b, true
}
