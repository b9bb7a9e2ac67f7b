package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cage"

// PrometheusMetrics implements core.Metrics with Prometheus counters
type PrometheusMetrics struct {
	registry *prometheus.Registry

	admissionDecisions    *prometheus.CounterVec
	reservationTransition *prometheus.CounterVec
	inventoryCalls        *prometheus.CounterVec
	httpRequests          *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors on a dedicated registry
func NewPrometheusMetrics() *PrometheusMetrics {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),

		admissionDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "admission_decisions_total",
				Help:      "Count of admission decisions by outcome and deciding rule.",
			},
			[]string{"outcome", "rule"},
		),

		reservationTransition: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_transitions_total",
				Help:      "Count of committed reservation status changes.",
			},
			[]string{"from", "to"},
		),

		inventoryCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inventory_calls_total",
				Help:      "Count of calls to the inventory system by result.",
			},
			[]string{"operation", "result"},
		),

		httpRequests: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		m.admissionDecisions,
		m.reservationTransition,
		m.inventoryCalls,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RegisterDBStats exports connection pool statistics for db
func (m *PrometheusMetrics) RegisterDBStats(db *sql.DB) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, namespace))
}

// AdmissionDecision implements core.Metrics
func (m *PrometheusMetrics) AdmissionDecision(outcome, rule string) {
	m.admissionDecisions.WithLabelValues(outcome, rule).Inc()
}

// ReservationTransition implements core.Metrics
func (m *PrometheusMetrics) ReservationTransition(from, to string) {
	m.reservationTransition.WithLabelValues(from, to).Inc()
}

// InventoryCall implements core.Metrics
func (m *PrometheusMetrics) InventoryCall(operation, result string) {
	m.inventoryCalls.WithLabelValues(operation, result).Inc()
}

// ObserveHTTPRequest records one served request
func (m *PrometheusMetrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// NoopMetrics discards every observation
type NoopMetrics struct{}

// AdmissionDecision implements core.Metrics
func (NoopMetrics) AdmissionDecision(string, string) {}

// ReservationTransition implements core.Metrics
func (NoopMetrics) ReservationTransition(string, string) {}

// InventoryCall implements core.Metrics
func (NoopMetrics) InventoryCall(string, string) {}

// ObserveHTTPRequest matches PrometheusMetrics for the request middleware
func (NoopMetrics) ObserveHTTPRequest(string, string, int, time.Duration) {}
