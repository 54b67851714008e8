package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	recordsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "employee_api",
		Subsystem: "synth",
		Name:      "records_generated_total",
		Help:      "Total number of fabricated employee records.",
	})

	fieldsNulled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "employee_api",
		Subsystem: "synth",
		Name:      "fields_nulled_total",
		Help:      "Display fields dropped by the null policy, by field.",
	}, []string{"field"})

	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "employee_api",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of API requests broken down by route and result.",
	}, []string{"route", "result"})

	apiLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "employee_api",
		Subsystem: "http",
		Name:      "latency_seconds",
		Help:      "Latency distribution for API requests.",
		Buckets: []float64{
			0.0005, 0.001, 0.002, 0.005,
			0.01, 0.02, 0.05,
			0.1, 0.2, 0.5,
			1, 2, 5,
		},
	}, []string{"route", "result"})
)

// Recorder feeds synthesizer events into Prometheus.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (*Recorder) RecordGenerated(nulled []string) {
	recordsGenerated.Inc()
	for _, f := range nulled {
		fieldsNulled.WithLabelValues(f).Inc()
	}
}

// ObserveRequest records one finished request.
func ObserveRequest(route string, status int, took time.Duration) {
	result := ResultClass(status)
	apiRequests.WithLabelValues(route, result).Inc()
	apiLatency.WithLabelValues(route, result).Observe(took.Seconds())
}

func ResultClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
