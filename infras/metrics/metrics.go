package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	BookingOutcomeCreated  = "created"
	BookingOutcomeConflict = "conflict"
	BookingOutcomeInvalid  = "invalid"
	BookingOutcomeError    = "error"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hallbook_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hallbook_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	bookingAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hallbook_booking_attempts_total",
			Help: "Booking creation attempts by outcome",
		},
		[]string{"outcome"},
	)

	hallLockWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hallbook_hall_lock_wait_seconds",
			Help:    "Time spent waiting for the per-hall booking lock",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
	)
)

func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveBooking(outcome string) {
	bookingAttempts.WithLabelValues(outcome).Inc()
}

func ObserveHallLockWait(elapsed time.Duration) {
	hallLockWait.Observe(elapsed.Seconds())
}
