package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	scans       *prometheus.CounterVec
	forecasts   *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		scans: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradescout_scans_total",
				Help: "Total number of turning-point scans",
			},
			[]string{"symbol"},
		),
		forecasts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradescout_forecasts_total",
				Help: "Total number of forecasts computed",
			},
			[]string{"symbol"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradescout_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tradescout_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordScan records a completed turning-point scan for a symbol.
func (r *Recorder) RecordScan(symbol string) {
	r.scans.WithLabelValues(symbol).Inc()
}

// RecordForecast records a computed forecast for a symbol.
func (r *Recorder) RecordForecast(symbol string) {
	r.forecasts.WithLabelValues(symbol).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
