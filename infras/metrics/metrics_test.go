package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBooking(t *testing.T) {
	before := testutil.ToFloat64(bookingAttempts.WithLabelValues(BookingOutcomeConflict))

	ObserveBooking(BookingOutcomeConflict)
	ObserveBooking(BookingOutcomeConflict)

	assert.Equal(t, before+2, testutil.ToFloat64(bookingAttempts.WithLabelValues(BookingOutcomeConflict)))
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodPost, "/bookings", "201"))

	ObserveHTTPRequest(http.MethodPost, "/bookings", http.StatusCreated, 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodPost, "/bookings", "201")))
}

func TestObserveHallLockWait(t *testing.T) {
	assert.NotPanics(t, func() {
		ObserveHallLockWait(time.Millisecond)
	})
	assert.Equal(t, 1, testutil.CollectAndCount(hallLockWait))
}
