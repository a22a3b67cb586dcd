package cells

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "cells").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

type MetricsOption func(*MetricsConfig)

func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

// Metrics is an Observer exporting graph activity as Prometheus counters,
// labelled by graph name. Pass it to NewGraph with WithObserver.
type Metrics struct {
	cellsCreated    *prometheus.CounterVec
	inputSets       *prometheus.CounterVec
	deferredSets    *prometheus.CounterVec
	computeChanges  *prometheus.CounterVec
	callbackNotices *prometheus.CounterVec
}

// NewMetrics registers the cell metrics. Like promauto, it panics if they
// are already registered in the registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "cells",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}, append([]string{"graph"}, labels...))
	}

	return &Metrics{
		cellsCreated:    counter("cells_created_total", "Total number of cells created", "kind"),
		inputSets:       counter("input_sets_total", "Total number of input updates propagated"),
		deferredSets:    counter("deferred_sets_total", "Total number of input updates deferred behind a running update"),
		computeChanges:  counter("compute_changes_total", "Total number of compute cell value changes detected"),
		callbackNotices: counter("callback_notifications_total", "Total number of values delivered to callback cells"),
	}
}

func (m *Metrics) CellCreated(graph string, kind Kind) {
	m.cellsCreated.WithLabelValues(graph, kind.String()).Inc()
}

func (m *Metrics) InputSet(graph string) {
	m.inputSets.WithLabelValues(graph).Inc()
}

func (m *Metrics) SetDeferred(graph string) {
	m.deferredSets.WithLabelValues(graph).Inc()
}

func (m *Metrics) ComputeChanged(graph string) {
	m.computeChanges.WithLabelValues(graph).Inc()
}

func (m *Metrics) CallbackNotified(graph string) {
	m.callbackNotices.WithLabelValues(graph).Inc()
}
