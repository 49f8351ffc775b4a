package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New()

	m.BookingCreated()
	m.BookingCreated()
	m.StatusTransition("pending", "confirmed")
	m.AvailabilityWritten(false)
	m.NotificationSent("sms", errors.New("x"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("pending", "confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityWrites.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsSent.WithLabelValues("sms", "failed")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BookingCreated()
		m.StatusTransition("a", "b")
		m.ObserveHTTP("GET", "/", 200, 0.1)
	})
}

func TestHandlerExposesSeries(t *testing.T) {
	m := New()
	m.ObserveHTTP("GET", "/api/services", 200, 0.01)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "salon_http_request_duration_seconds")
}
