package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry
	renders  *prometheus.CounterVec
	failures prometheus.Counter
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tds_website_page_renders_total",
			Help: "Landing page renders, by page variant.",
		}, []string{"variant"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tds_website_page_render_failures_total",
			Help: "Landing page renders that failed to write.",
		}),
	}
	reg.MustRegister(m.renders, m.failures)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
