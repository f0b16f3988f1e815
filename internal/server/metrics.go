package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics of the server.
type Metrics struct {
	registry    *prometheus.Registry
	Validations *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	return &Metrics{
		registry: reg,
		Validations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "isbnref_validations_total",
			Help: "Total number of validated numbers by type and result",
		}, []string{"type", "result"}),
	}
}

// ObserveValidation counts a validated number. result is "valid" or the
// kind of the validation error.
func (m *Metrics) ObserveValidation(typ, result string) {
	if typ == "" {
		typ = "invalid"
	}
	m.Validations.WithLabelValues(typ, result).Inc()
}

// Handler serves the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
