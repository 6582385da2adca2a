// Package metrics exposes Prometheus collectors for the niber runtime.
//
// Metrics collected:
//   - niber_component_renders_total: component invocations by component name
//   - niber_reconciled_total: reconciliation outcomes (reuse_component, reuse_host, mount)
//   - niber_updates_total: state-triggered updates by status (ok, no_root, commit_error)
//   - niber_commit_duration_seconds: time spent committing to the container
//   - niber_instances: instances in the most recently committed tree
//
// A nil *Metrics is valid and records nothing, so the runtime can call it
// unconditionally.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reconciliation outcomes.
const (
	OutcomeReuseComponent = "reuse_component"
	OutcomeReuseHost      = "reuse_host"
	OutcomeMount          = "mount"
)

// Update statuses.
const (
	StatusOK          = "ok"
	StatusNoRoot      = "no_root"
	StatusCommitError = "commit_error"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "niber").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for commit duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "niber",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the runtime collectors.
type Metrics struct {
	renders        *prometheus.CounterVec
	reconciled     *prometheus.CounterVec
	updates        *prometheus.CounterVec
	commitDuration prometheus.Histogram
	instances      prometheus.Gauge
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// Default returns collectors registered with the default Prometheus
// registerer. Repeated calls return the same instance.
func Default() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = New()
	})
	return defaultMetrics
}

// New creates and registers a set of collectors.
// Registering twice with the same registry panics, as with promauto.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "component_renders_total",
			Help:        "Total number of component function invocations",
			ConstLabels: config.ConstLabels,
		}, []string{"component"}),

		reconciled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reconciled_total",
			Help:        "Total number of reconciled child positions by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		updates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "updates_total",
			Help:        "Total number of state-triggered updates by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		commitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "commit_duration_seconds",
			Help:        "Commit duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		instances: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "instances",
			Help:        "Number of instances in the last committed tree",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// RecordRender counts one invocation of the named component.
func (m *Metrics) RecordRender(component string) {
	if m == nil {
		return
	}
	if component == "" {
		component = "anonymous"
	}
	m.renders.WithLabelValues(component).Inc()
}

// RecordReconcile counts one reconciliation outcome.
func (m *Metrics) RecordReconcile(outcome string) {
	if m == nil {
		return
	}
	m.reconciled.WithLabelValues(outcome).Inc()
}

// RecordUpdate counts one state-triggered update.
func (m *Metrics) RecordUpdate(status string) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(status).Inc()
}

// ObserveCommit records the duration of one commit.
func (m *Metrics) ObserveCommit(d time.Duration) {
	if m == nil {
		return
	}
	m.commitDuration.Observe(d.Seconds())
}

// SetInstances records the size of the committed tree.
func (m *Metrics) SetInstances(n int) {
	if m == nil {
		return
	}
	m.instances.Set(float64(n))
}
