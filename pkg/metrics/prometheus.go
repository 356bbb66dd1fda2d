// Package metrics provides Prometheus metrics for the bonus calculator.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Calculation results used as the "result" label.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// Manager owns the calculator's Prometheus collectors.
type Manager struct {
	namespace    string
	subsystem    string
	bonusBuckets []float64
	enabled      bool
	registry     prometheus.Registerer

	calculations     *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	bonusAmount      prometheus.Histogram
	batchSize        prometheus.Histogram
	batchDuration    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton used by the package-level helpers

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry behind globalManager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

func newManager(opts []Option) *Manager {
	m := &Manager{
		namespace: "bonus",
		subsystem: "calculator",
		// Largest possible bonus is 750000 * 0.20 * 2.00 = 300000.
		bonusBuckets: prometheus.ExponentialBuckets(250, 2, 12),
		enabled:      true,
		registry:     prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.enabled {
		m.initializeMetrics()
	}
	return m
}

// NewManager creates a metrics manager and registers its collectors. It
// panics when a collector is already registered; use Register where the
// registry may be shared.
func NewManager(opts ...Option) *Manager {
	m := newManager(opts)
	if m.enabled {
		m.registry.MustRegister(m.collectors()...)
	}
	return m
}

// Register is NewManager for registries that may already hold the
// calculator's collectors. On failure nothing stays registered and the
// returned error wraps both ErrRegister and the registry's error.
func Register(opts ...Option) (*Manager, error) {
	m := newManager(opts)
	if !m.enabled {
		return m, nil
	}

	cs := m.collectors()
	for i, c := range cs {
		if err := m.registry.Register(c); err != nil {
			for _, done := range cs[:i] {
				m.registry.Unregister(done)
			}
			return nil, fmt.Errorf("%w: %w", ErrRegister, err)
		}
	}
	return m, nil
}

func (m *Manager) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.calculations,
		m.validationErrors,
		m.bonusAmount,
		m.batchSize,
		m.batchDuration,
	}
}

func (m *Manager) initializeMetrics() {
	m.calculations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "calculations_total",
		Help:      "Total number of calculator calls by operation and result",
	}, []string{"operation", "result"})

	m.validationErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_errors_total",
		Help:      "Total number of rejected inputs by field and violation kind",
	}, []string{"field", "kind"})

	m.bonusAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bonus_amount",
		Help:      "Distribution of computed salary bonuses",
		Buckets:   m.bonusBuckets,
	})

	m.batchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_size",
		Help:      "Number of employees per evaluated batch",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	m.batchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_duration_seconds",
		Help:      "Wall time spent evaluating a batch",
		Buckets:   prometheus.DefBuckets,
	})
}

// Enabled reports whether the manager records anything.
func (m *Manager) Enabled() bool { return m != nil && m.enabled }

// RecordCalculation counts one calculator call.
func (m *Manager) RecordCalculation(operation, result string) {
	if !m.Enabled() {
		return
	}
	m.calculations.WithLabelValues(operation, result).Inc()
}

// RecordValidationError counts one rejected input.
func (m *Manager) RecordValidationError(field, kind string) {
	if !m.Enabled() {
		return
	}
	m.validationErrors.WithLabelValues(field, kind).Inc()
}

// ObserveBonus records a computed salary bonus.
func (m *Manager) ObserveBonus(amount float64) {
	if !m.Enabled() {
		return
	}
	m.bonusAmount.Observe(amount)
}

// ObserveBatch records the size and duration of an evaluated batch.
func (m *Manager) ObserveBatch(size int, elapsed time.Duration) {
	if !m.Enabled() {
		return
	}
	m.batchSize.Observe(float64(size))
	m.batchDuration.Observe(elapsed.Seconds())
}

// Default returns the package-level manager registered on GetRegistry().
func Default() *Manager { return globalManager }

// RecordCalculation counts one calculator call on the global manager.
func RecordCalculation(operation, result string) {
	globalManager.RecordCalculation(operation, result)
}

// RecordValidationError counts one rejected input on the global manager.
func RecordValidationError(field, kind string) {
	globalManager.RecordValidationError(field, kind)
}

// ObserveBonus records a computed bonus on the global manager.
func ObserveBonus(amount float64) {
	globalManager.ObserveBonus(amount)
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
