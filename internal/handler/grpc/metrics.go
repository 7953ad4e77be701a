package grpc

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks per-call Prometheus metrics of the translator service.
//
// All metrics use the translator_grpc_ prefix. A nil *Metrics records
// nothing.
type Metrics struct {
	// RequestsTotal counts calls by method and status code
	RequestsTotal *prometheus.CounterVec

	// RequestDuration tracks handler latency by method
	RequestDuration *prometheus.HistogramVec

	// InFlight is the number of calls currently being handled
	InFlight prometheus.Gauge
}

// NewMetrics creates the call metrics and registers them on reg.
// Panics if registration fails (expected during initialization only).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "translator_grpc_requests_total",
				Help: "Total gRPC calls by method and status code",
			},
			[]string{"method", "code"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "translator_grpc_request_duration_seconds",
				Help:    "gRPC call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "translator_grpc_requests_in_flight",
				Help: "Current number of gRPC calls being handled",
			},
		),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.InFlight,
	)

	return m
}

// RecordRequest records a finished call.
func (m *Metrics) RecordRequest(method, code string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, code).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(durationSeconds)
}

func (m *Metrics) callStarted() {
	if m == nil {
		return
	}
	m.InFlight.Inc()
}

func (m *Metrics) callFinished() {
	if m == nil {
		return
	}
	m.InFlight.Dec()
}
