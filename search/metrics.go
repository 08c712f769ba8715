package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "euclid"
	metricsSubsystem = "search"

	reasonPredicate = "predicate"
	reasonBound     = "bound"
)

// Metrics counts search events. A nil *Metrics is valid and counts nothing.
type Metrics struct {
	Nodes      prometheus.Counter
	GoalChecks prometheus.Counter
	Pruned     *prometheus.CounterVec
	Solutions  prometheus.Counter
}

// NewMetrics creates the search counters and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Nodes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "nodes_total",
			Help:      "Construction states visited",
		}),
		GoalChecks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "goal_checks_total",
			Help:      "Goal predicate evaluations",
		}),
		Pruned: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "pruned_total",
			Help:      "Subtrees cut by the prune predicate or the lower bound",
		}, []string{"reason"}),
		Solutions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "solutions_total",
			Help:      "Goal states found",
		}),
	}
}

func (m *Metrics) node() {
	if m != nil {
		m.Nodes.Inc()
	}
}

func (m *Metrics) goalCheck() {
	if m != nil {
		m.GoalChecks.Inc()
	}
}

func (m *Metrics) pruned(reason string) {
	if m != nil {
		m.Pruned.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) solution() {
	if m != nil {
		m.Solutions.Inc()
	}
}
