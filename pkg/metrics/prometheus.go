package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	calculations *prometheus.CounterVec
	chatAnswers  *prometheus.CounterVec
	quoteLookups *prometheus.CounterVec
	lastQuote    *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		calculations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finhub_calculations_total",
				Help: "Total number of calculator invocations",
			},
			[]string{"type"},
		),
		chatAnswers: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finhub_chat_answers_total",
				Help: "Total number of assistant answers by source",
			},
			[]string{"source"},
		),
		quoteLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finhub_quote_lookups_total",
				Help: "Total number of quote lookups",
			},
			[]string{"kind"},
		),
		lastQuote: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "finhub_last_quote",
				Help: "Last quoted price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finhub_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordCalculation records a calculator invocation.
func (r *Recorder) RecordCalculation(calcType string) {
	r.calculations.WithLabelValues(calcType).Inc()
}

// RecordChatAnswer records an assistant answer by producing source.
func (r *Recorder) RecordChatAnswer(source string) {
	r.chatAnswers.WithLabelValues(source).Inc()
}

// RecordQuoteLookup records a quote lookup (kind: known or unknown).
func (r *Recorder) RecordQuoteLookup(kind string) {
	r.quoteLookups.WithLabelValues(kind).Inc()
}

// RecordLastQuote records the last quoted price for a symbol.
func (r *Recorder) RecordLastQuote(symbol string, price float64) {
	r.lastQuote.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
