package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the service's Prometheus collectors.
//
// Usage:
//
//	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
//	defer metrics.ObserveProviderFetch("users", start, err)
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// HTTPRequestDuration measures API latency in seconds.
	// Labels: method, route, status_code
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestCounter counts API requests.
	// Labels: method, route, status_code
	HTTPRequestCounter *prometheus.CounterVec

	// ProviderFetchDuration measures Stats Provider calls in seconds.
	// Labels: endpoint (users|conversations|education|notes|summary), status (success|error)
	ProviderFetchDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stats_dashboard_http_request_duration_seconds",
				Help:    "Duration of dashboard API requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "route", "status_code"},
		),
		HTTPRequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stats_dashboard_http_requests_total",
				Help: "Total number of dashboard API requests",
			},
			[]string{"method", "route", "status_code"},
		),
		ProviderFetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stats_dashboard_provider_fetch_duration_seconds",
				Help:    "Duration of Stats Provider fetches in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"endpoint", "status"},
		),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.HTTPRequestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
	m.HTTPRequestCounter.WithLabelValues(method, route, code).Inc()
}

func (m *Metrics) ObserveProviderFetch(endpoint string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.ProviderFetchDuration.WithLabelValues(endpoint, status).Observe(time.Since(start).Seconds())
}
