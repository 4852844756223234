// Package metrics exposes a balance invocation's Report (pkg/search) as
// Prometheus collectors, for callers that run the balancer as a
// long-lived service and scrape it. It is entirely optional and separate
// from the core: nothing in pkg/search or pkg/model imports this package.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/clusterbalance/balancer/pkg/search"
)

// Collectors holds the balancer's Prometheus metrics. Register it with a
// prometheus.Registerer once at process startup, then call Observe after
// every invocation.
type Collectors struct {
	costTotal        *prometheus.GaugeVec
	costContribution *prometheus.GaugeVec
	stepsTotal       prometheus.Counter
	duration         prometheus.Histogram
}

// NewCollectors builds an unregistered set of balancer metrics.
func NewCollectors() *Collectors {
	return &Collectors{
		costTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "balancer_cost_total",
			Help: "Aggregate weighted cost of the cluster, before and after the most recent invocation.",
		}, []string{"phase"}), // phase = "initial" | "final"
		costContribution: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "balancer_cost_contribution",
			Help: "Fraction of the final aggregate cost contributed by each cost function.",
		}, []string{"function"}),
		stepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "balancer_steps_total",
			Help: "Cumulative number of search-loop steps taken across all invocations.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "balancer_duration_seconds",
			Help:    "Wall-clock duration of a balance invocation.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collectors) Describe(ch chan<- *prometheus.Desc) {
	c.costTotal.Describe(ch)
	c.costContribution.Describe(ch)
	c.stepsTotal.Describe(ch)
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collectors) Collect(ch chan<- prometheus.Metric) {
	c.costTotal.Collect(ch)
	c.costContribution.Collect(ch)
	c.stepsTotal.Collect(ch)
	c.duration.Collect(ch)
}

// WriteText gathers every metric family from gatherer and writes it to w
// in the Prometheus text exposition format, for callers that serve their
// own /metrics endpoint rather than using an http.Handler.
func WriteText(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, f := range families {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}
	return nil
}

// Observe records one invocation's Report.
func (c *Collectors) Observe(r search.Report) {
	c.costTotal.WithLabelValues("initial").Set(r.InitialCost)
	c.costTotal.WithLabelValues("final").Set(r.FinalCost)
	for name, contribution := range r.Contributions {
		c.costContribution.WithLabelValues(name).Set(contribution)
	}
	c.stepsTotal.Add(float64(r.Steps))
	c.duration.Observe(r.Elapsed.Seconds())
}
