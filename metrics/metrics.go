// Package metrics exposes the service's Prometheus collectors.
//
// It follows the dedicated-registry pattern: a private
// *prometheus.Registry rather than the default global one, so the
// service's collectors never collide with anything else registered in
// the process, and Handler serves exactly this registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters the lifecycle engine and sweeper report
// against.
type Metrics struct {
	registry *prometheus.Registry

	enqueued    prometheus.Counter
	received    *prometheus.CounterVec
	completed   prometheus.Counter
	failed      prometheus.Counter
	sweepTicks  prometheus.Counter
	unlocked    prometheus.Counter
	retired     prometheus.Counter
}

// New builds a Metrics instance with every collector registered
// against a fresh registry under the given namespace.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,

		enqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_enqueued_total",
			Help:      "Total number of messages enqueued.",
		}),
		received: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_received_total",
			Help:      "Total number of successful receive leases, by queue.",
		}, []string{"queue"}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_completed_total",
			Help:      "Total number of messages explicitly completed.",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_failed_total",
			Help:      "Total number of messages explicitly failed.",
		}),
		sweepTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_ticks_total",
			Help:      "Total number of sweeper reconciliation ticks run.",
		}),
		unlocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_unlocked_total",
			Help:      "Total number of expired leases returned to ready by the sweeper.",
		}),
		retired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_retired_total",
			Help:      "Total number of messages retired to failed by the sweeper.",
		}),
	}

	registry.MustRegister(
		m.enqueued,
		m.received,
		m.completed,
		m.failed,
		m.sweepTicks,
		m.unlocked,
		m.retired,
	)
	return m
}

func (m *Metrics) ObserveEnqueue() {
	m.enqueued.Inc()
}

func (m *Metrics) ObserveReceive(queue string) {
	m.received.WithLabelValues(queue).Inc()
}

func (m *Metrics) ObserveComplete() {
	m.completed.Inc()
}

func (m *Metrics) ObserveFail() {
	m.failed.Inc()
}

func (m *Metrics) ObserveSweep(unlocked, retired int64) {
	m.sweepTicks.Inc()
	m.unlocked.Add(float64(unlocked))
	m.retired.Add(float64(retired))
}

// Handler serves this instance's registry in Prometheus exposition
// format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
