package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	AnalyzeRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexai_analyze_requests_total",
			Help: "Total contract analysis requests",
		},
		[]string{"status"}, // success | error | rejected
	)
	AnalyzeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lexai_analyze_duration_seconds",
			Help:    "End-to-end analysis pipeline time",
			Buckets: prometheus.DefBuckets,
		},
	)
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexai_login_attempts_total",
			Help: "Total login attempts",
		},
		[]string{"result"}, // ok | failed
	)
)

func Register() {
	prometheus.MustRegister(AnalyzeRequests, AnalyzeDuration, LoginAttempts)
}
