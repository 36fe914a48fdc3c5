// transactions-check/pkg/metrics/metrics.go
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transactions_api",
			Name:      "requests_total",
			Help:      "Total requests served per service",
		},
		[]string{"service", "status", "method"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "transactions_api",
			Name:      "request_duration_seconds",
			Help:      "Request duration per service",
			Buckets: []float64{
				0.001, 0.002, 0.005, 0.01, 0.02, 0.05,
				0.1, 0.2, 0.5, 1, 2, 5,
			},
		},
		[]string{"service", "status"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration)
}

func IncRequest(service, status, method string) {
	RequestsTotal.WithLabelValues(service, status, method).Inc()
}

func ObserveDuration(service, status string, seconds float64) {
	RequestDuration.WithLabelValues(service, status).Observe(seconds)
}
