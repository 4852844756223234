// Package costs implements the eleven cost functions of spec §4.2: each
// reduces a ClusterModel to a scalar in [0, 1] and is composed into a
// weighted sum by the search driver. A cost function subscribes to every
// applied (and undone) Action via PostAction so it can maintain whatever
// incremental state it needs instead of rescanning the whole model on
// every Cost() call.
package costs

import (
	"math"

	"github.com/clusterbalance/balancer/pkg/model"
)

// Function is the capability set every cost function implements (spec §9:
// "a single capability set {init, postAction, cost, isNeeded, multiplier}
// implemented as tagged variants or an interface — no base-class state is
// needed beyond the shared scaling helper, which becomes a free function").
type Function interface {
	// Name identifies the cost function for observability reporting.
	Name() string
	// Init is called once per balance invocation, before the search loop.
	Init(m *model.ClusterModel)
	// PostAction is called after every applied and every undone action.
	PostAction(a model.Action)
	// Cost returns a pure function of the current model and the function's
	// own incremental state, in [0, 1] for every function but MoveCost
	// (see move_cost.go).
	Cost() float64
	// IsNeeded allows a function to disable itself, e.g. replica-colocation
	// functions when the cluster has no replicas.
	IsNeeded() bool
	// Multiplier is this function's weight in the aggregate cost. A
	// multiplier <= 0 means the function is skipped entirely.
	Multiplier() float64
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// costFromArray scales a zero-sum distribution's dispersion into [0, 1]
// (spec §4.2 "Scaling primitive costFromArray").
func costFromArray(stats []float64) float64 {
	n := len(stats)
	if n == 0 {
		return 0
	}

	total := 0.0
	for _, v := range stats {
		total += v
	}
	mean := total / float64(n)

	max := float64(n-1)*mean + (total - mean)

	var min float64
	if total < float64(n) {
		min = (float64(n)-total)*mean + (1-mean)*total
	} else {
		floorMean := math.Floor(mean)
		frac := total - floorMean*float64(n)
		min = frac*(math.Ceil(mean)-mean) + (float64(n)-frac)*(mean-floorMean)
	}

	dispersion := 0.0
	for _, v := range stats {
		dispersion += math.Abs(v - mean)
	}

	if max == min {
		return 0
	}
	return clamp((dispersion-min)/(max-min), 0, 1)
}

// dispatch routes an Action to onMove/onSwap, the default postAction
// behavior shared by every cost function that tracks per-region or
// per-server state (spec §4.2 "default implementation dispatches on
// Action type").
func dispatch(a model.Action, onMove func(region, from, to int), onSwap func(regionA, serverA, regionB, serverB int)) {
	switch a.Kind {
	case model.ActionMove:
		onMove(a.Region, a.From, a.To)
	case model.ActionAssign:
		onMove(a.Region, -1, a.To)
	case model.ActionSwap:
		onSwap(a.Region, a.From, a.RegionB, a.ServerB)
	}
}
