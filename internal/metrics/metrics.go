package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Request volume
	RequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "requests_total",
		Help: "Total number of API requests received.",
	})

	// Concurrency (in flight)
	ActiveRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "active_requests",
		Help: "Current number of in-flight requests.",
	})

	// Request latency (handler duration)
	RequestDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "request_duration_seconds",
		Help:    "End-to-end handler duration for API requests.",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	})

	// Attempts recorded through the progress endpoint
	AttemptsRecordedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "attempts_recorded_total",
		Help: "Total number of answer attempts persisted.",
	})

	// Login upserts
	LoginsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logins_total",
		Help: "Total number of login upserts.",
	})
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		RequestsTotal,
		ActiveRequests,
		RequestDurationSeconds,
		AttemptsRecordedTotal,
		LoginsTotal,
	)
}
