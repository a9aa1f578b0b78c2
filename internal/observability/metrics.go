package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chrolis",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chrolis",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	codecOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chrolis",
			Subsystem: "codec",
			Name:      "operations_total",
			Help:      "Step encode and decode operations by outcome.",
		},
		[]string{"op", "result"},
	)
	codecCorrections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "chrolis",
			Subsystem: "codec",
			Name:      "pulse_corrections_total",
			Help:      "Break steps whose pulse count was forced to 1.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, codecOperations, codecCorrections)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordCodec counts one encode/decode call. result is "ok" or an error
// kind label.
func RecordCodec(op, result string) {
	RegisterMetrics()
	codecOperations.WithLabelValues(op, result).Inc()
}

func RecordPulseCorrection() {
	RegisterMetrics()
	codecCorrections.Inc()
}
