package requests

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	joinRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anis_join_requests_total",
			Help: "Total number of join request transitions",
		},
		[]string{"status"},
	)

	resolutionTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "anis_join_request_resolution_seconds",
			Help:    "Time from request creation to host response",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"action"},
	)
)

func RecordRequest(status Status) {
	joinRequestsTotal.WithLabelValues(string(status)).Inc()
}

func RecordResolutionTime(action string, duration time.Duration) {
	resolutionTime.WithLabelValues(action).Observe(duration.Seconds())
}
