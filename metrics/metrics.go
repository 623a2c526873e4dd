// Package metrics exports merge-search activity as Prometheus counters.
//
// A Collector is an rpni.Observer: pass it in rpni.Options and register it
// with a prometheus.Registerer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tracefold/core"
	"github.com/katalvlaran/tracefold/rpni"
)

var _ rpni.Observer = (*Collector)(nil)

// Collector counts search events. It is safe for concurrent use, so one
// Collector can observe several runs.
type Collector struct {
	attempted prometheus.Counter
	committed prometheus.Counter
	reverted  prometheus.Counter
	promoted  prometheus.Counter
	folded    prometheus.Counter
	runs      *prometheus.CounterVec
	duration  prometheus.Histogram
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		attempted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracefold_merges_attempted_total",
			Help: "Tentative red/blue merges.",
		}),
		committed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracefold_merges_committed_total",
			Help: "Merges kept because the folded graph had finite condition cost.",
		}),
		reverted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracefold_merges_reverted_total",
			Help: "Merges rolled back because some branch had no acceptable condition.",
		}),
		promoted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracefold_promotions_total",
			Help: "Blue nodes promoted to red.",
		}),
		folded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracefold_fold_merges_total",
			Help: "Node merges performed while folding same-action siblings.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracefold_runs_total",
			Help: "Generalization runs by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tracefold_run_duration_seconds",
			Help:    "Wall time of one generalization run.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	for _, m := range []prometheus.Collector{c.attempted, c.committed, c.reverted, c.promoted, c.folded, c.runs, c.duration} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Collector) MergeAttempted(core.NodeID, core.NodeID)          { c.attempted.Inc() }
func (c *Collector) MergeCommitted(core.NodeID, core.NodeID, float64) { c.committed.Inc() }
func (c *Collector) MergeReverted(core.NodeID, core.NodeID)           { c.reverted.Inc() }
func (c *Collector) Promoted(core.NodeID)                             { c.promoted.Inc() }
func (c *Collector) Folded(core.NodeID, core.NodeID)                  { c.folded.Inc() }

// RunFinished records the outcome and duration of one run.
func (c *Collector) RunFinished(res rpni.Result, seconds float64) {
	c.runs.WithLabelValues(res.String()).Inc()
	c.duration.Observe(seconds)
}
