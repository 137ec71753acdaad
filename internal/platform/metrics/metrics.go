// Package metrics owns the Prometheus instruments exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics exposes application-level instruments. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	ledgerOps       *prometheus.CounterVec
	commissionPaid  *prometheus.CounterVec
	rateLimitDenied prometheus.Counter
}

// New creates the instruments on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "commission_http_requests_total",
			Help: "HTTP requests by route template, method and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "commission_http_request_duration_seconds",
			Help:    "HTTP request latency by route template.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		ledgerOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "commission_ledger_operations_total",
			Help: "Commission ledger create, replace and delete operations by result.",
		}, []string{"operation", "result"}),
		commissionPaid: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "commission_ledger_amount_written_total",
			Help: "Sum of commission amounts written to the ledger, by entry role.",
		}, []string{"role"}),
		rateLimitDenied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "commission_rate_limit_denied_total",
			Help: "Requests rejected by the rate limiter.",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.ledgerOps,
		m.commissionPaid,
		m.rateLimitDenied,
	)
	return m
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveLedgerOperation counts a ledger operation outcome.
func (m *Metrics) ObserveLedgerOperation(operation string, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.ledgerOps.WithLabelValues(operation, result).Inc()
}

// AddCommissionWritten adds amount to the written-commission counter for role.
func (m *Metrics) AddCommissionWritten(role string, amount float64) {
	if m == nil || amount <= 0 {
		return
	}
	m.commissionPaid.WithLabelValues(role).Add(amount)
}

// IncRateLimitDenied counts a rejected request.
func (m *Metrics) IncRateLimitDenied() {
	if m == nil {
		return
	}
	m.rateLimitDenied.Inc()
}
