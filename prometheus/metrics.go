// Package prometheus records apidoc resolver and search metrics with the
// Prometheus client library.
package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resolution outcomes.
const (
	OutcomeResolved   = "resolved"
	OutcomeUnresolved = "unresolved"
	OutcomeError      = "error"
)

// Metrics holds the apidoc collectors.
type Metrics struct {
	ResolutionsTotal  *prometheus.CounterVec
	SearchesTotal     *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewMetrics creates and registers all apidoc collectors on registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apidoc_resolutions_total",
				Help: "Total number of identifier resolutions",
			},
			[]string{"strategy", "outcome"},
		),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apidoc_searches_total",
				Help: "Total number of catalog searches",
			},
			[]string{"kind"},
		),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "apidoc_operation_duration_seconds",
				Help:    "Resolver and search operation duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"operation"},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.ResolutionsTotal,
		m.SearchesTotal,
		m.OperationDuration,
	)

	return m
}

// Handler returns the exposition handler for the registry the metrics were
// registered on.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(operation string, begin time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(begin).Seconds())
}
