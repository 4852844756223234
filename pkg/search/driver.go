// Package search implements the SearchDriver of spec §4.4: the stochastic
// hill-climbing loop that ties the ClusterModel, cost functions, and
// candidate generators together and emits a movement plan.
package search

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/clusterbalance/balancer/pkg/api"
	"github.com/clusterbalance/balancer/pkg/candidates"
	"github.com/clusterbalance/balancer/pkg/costs"
	"github.com/clusterbalance/balancer/pkg/model"
)

// Driver runs one balance invocation at a time (spec §5: the core is
// single-threaded and synchronous within an invocation; callers serialize
// concurrent invocations themselves).
type Driver struct {
	logger klog.Logger
	rng    *rand.Rand
	gens   []candidates.Generator
}

// New returns a Driver seeded from rng. Tests must supply a fixed seed for
// reproducible runs (spec §4.4 "Determinism").
func New(logger klog.Logger, rng *rand.Rand) *Driver {
	return &Driver{logger: logger, rng: rng, gens: candidates.DefaultSet()}
}

// Run executes one balance invocation and returns its plan (nil if no
// improving plan was found) and its observability report.
func (d *Driver) Run(inv api.Invocation, cfg api.Config) (plan api.Plan, report Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			// Precondition failures are programming errors (spec §7): abort
			// this invocation, surface a fatal diagnostic, and return "no
			// plan" rather than letting the panic escape to the caller.
			d.logger.Error(fmt.Errorf("%v", r), "balancer: aborting invocation on precondition failure")
			plan = nil
			err = fmt.Errorf("balancer: invocation aborted: %v", r)
		}
	}()

	start := time.Now()

	m, buildErr := model.New(inv, cfg, d.logger)
	if buildErr != nil {
		return nil, Report{}, fmt.Errorf("balancer: building cluster model: %w", buildErr)
	}

	fns := costs.DefaultSet(cfg)
	for _, f := range fns {
		f.Init(m)
	}

	if m.NumServers() < cfg.MinServerBalance {
		return nil, Report{Skipped: true, Elapsed: time.Since(start)}, nil
	}

	initial, initialContrib := computeCost(fns, math.Inf(1))
	if !d.needsBalance(fns, initial, cfg) {
		return nil, Report{
			InitialCost:   initial,
			FinalCost:     initial,
			Contributions: initialContrib,
			Skipped:       true,
			Elapsed:       time.Since(start),
		}, nil
	}

	steps := cfg.MaxSteps
	if budget := m.NumRegions() * cfg.StepsPerRegion * m.NumServers(); budget < steps {
		steps = budget
	}
	deadline := start.Add(time.Duration(cfg.MaxRunningTimeMillis) * time.Millisecond)

	best := initial
	bestContrib := initialContrib
	stepsTaken := 0

	for step := 0; step < steps; step++ {
		stepsTaken = step + 1

		gen := d.gens[d.rng.Intn(len(d.gens))]
		action := gen.Generate(m, d.rng)
		if action.Kind == model.ActionNull {
			if time.Now().After(deadline) {
				break
			}
			continue
		}

		m.Apply(action)
		notify(fns, action)

		newCost, contrib := computeCost(fns, best)
		if newCost < best {
			best = newCost
			bestContrib = contrib
		} else {
			inverse := action.Inverse()
			m.Apply(inverse)
			notify(fns, inverse)
		}

		if time.Now().After(deadline) {
			break
		}
	}

	report = Report{
		InitialCost:   initial,
		FinalCost:     best,
		Contributions: bestContrib,
		Steps:         stepsTaken,
		Elapsed:       time.Since(start),
	}

	if best < initial {
		plan = ExtractPlan(m)
	}
	return plan, report, nil
}

// needsBalance implements spec §4.4's pre-check: proceed unconditionally
// if any replica-colocation cost is already nonzero, otherwise skip when
// the normalized aggregate cost is below minCostNeedBalance.
func (d *Driver) needsBalance(fns []costs.Function, total float64, cfg api.Config) bool {
	for _, f := range fns {
		switch f.Name() {
		case "RegionReplicaHost", "RegionReplicaRack":
			if f.IsNeeded() && f.Cost() > 0 {
				return true
			}
		}
	}
	sum := sumWeights(fns)
	if sum == 0 {
		return false
	}
	return total/sum >= cfg.MinCostNeedBalance
}

func sumWeights(fns []costs.Function) float64 {
	sum := 0.0
	for _, f := range fns {
		if f.IsNeeded() && f.Multiplier() > 0 {
			sum += f.Multiplier()
		}
	}
	return sum
}

// computeCost sums each needed function's weighted cost, in table order,
// stopping early once the running total exceeds earlyOutAbove — every
// term is nonnegative, so a partial sum past the threshold can only grow.
// When the full set is walked, the returned contributions map holds each
// function's fraction of the total (its weighted cost divided by the total);
// after an early out it holds only the weighted costs summed so far, which
// never happens for a result accepted as the new best.
func computeCost(fns []costs.Function, earlyOutAbove float64) (float64, map[string]float64) {
	total := 0.0
	contrib := make(map[string]float64, len(fns))
	for _, f := range fns {
		if !f.IsNeeded() || f.Multiplier() <= 0 {
			continue
		}
		c := f.Cost() * f.Multiplier()
		contrib[f.Name()] = c
		total += c
		if total > earlyOutAbove {
			return total, contrib
		}
	}
	if total > 0 {
		for name, c := range contrib {
			contrib[name] = c / total
		}
	}
	return total, contrib
}

func notify(fns []costs.Function, a model.Action) {
	for _, f := range fns {
		f.PostAction(a)
	}
}
