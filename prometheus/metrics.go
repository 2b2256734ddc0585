// Package prometheus instruments definer services with Prometheus metrics.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/definer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeOK labels calls that returned without error.
const OutcomeOK = "ok"

// Metrics holds the collectors exported on /metrics.
// Each Metrics owns its registry so tests never share global state.
type Metrics struct {
	Registry *prometheus.Registry

	// Source metrics
	Extractions     *prometheus.CounterVec
	ExtractDuration *prometheus.HistogramVec
	SourceRefusals  *prometheus.CounterVec

	// Lookup metrics
	Lookups        *prometheus.CounterVec
	LookupDuration prometheus.Histogram

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all collectors, including the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		Extractions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "definer_source_extractions_total",
				Help: "Total number of source extractions by outcome",
			},
			[]string{"source", "outcome"},
		),
		ExtractDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "definer_source_extract_duration_seconds",
				Help:    "Source extraction duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5},
			},
			[]string{"source"},
		),
		SourceRefusals: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "definer_source_refusals_total",
				Help: "Total number of words a source declined before fetching",
			},
			[]string{"source", "outcome"},
		),

		Lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "definer_lookups_total",
				Help: "Total number of word lookups by outcome",
			},
			[]string{"outcome"},
		),
		LookupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "definer_lookup_duration_seconds",
				Help:    "Word lookup duration in seconds",
				Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
			},
		),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "definer_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "definer_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
	}
}

// RecordHTTPRequest records a served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// outcome labels err by its application error code.
func outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	return definer.ErrorCode(err)
}
