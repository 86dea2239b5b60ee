package services

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics records ledger activity into a private prometheus
// registry. A private registry keeps repeated construction (tests, demo
// runs) from colliding on the default one.
type PrometheusMetrics struct {
	registry        *prometheus.Registry
	operationsTotal *prometheus.CounterVec
	transferAmount  prometheus.Histogram
	customersTotal  prometheus.Gauge
	accountsTotal   prometheus.Gauge
}

func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()

	return &PrometheusMetrics{
		registry: registry,
		operationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_operations_total",
				Help: "Total number of bank service operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		transferAmount: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_transfer_amount",
				Help:    "Distribution of successful transfer amounts",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		customersTotal: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_customers_total",
				Help: "Number of registered customers",
			},
		),
		accountsTotal: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_accounts_total",
				Help: "Number of registered accounts",
			},
		),
	}
}

// IncrementCounter increments a named counter with the given tags.
func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "bank_operations_total":
		m.operationsTotal.WithLabelValues(tags["operation"], tags["status"]).Inc()
	}
}

// RecordGauge sets a named gauge.
func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "bank_customers_total":
		m.customersTotal.Set(value)
	case "bank_accounts_total":
		m.accountsTotal.Set(value)
	}
}

// ObserveHistogram records a value into a named histogram.
func (m *PrometheusMetrics) ObserveHistogram(name string, value float64) {
	switch name {
	case "bank_transfer_amount":
		m.transferAmount.Observe(value)
	}
}

// Registry exposes the private registry for scraping.
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// StartMetricsServer serves the registry on addr. The caller owns shutdown.
func (m *PrometheusMetrics) StartMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		_ = server.ListenAndServe()
	}()

	return server
}
