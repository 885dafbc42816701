package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/infras/metrics"
)

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()

	m.PricingFallback("deluxe")
	m.PricingFallback("deluxe")
	m.BookingTransition("confirmed", "checked-in")
	m.ObserveHTTPRequest(http.MethodGet, "/v1/rooms", http.StatusOK, 15*time.Millisecond)

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `pricing_fallback_total{room_type="deluxe"} 2`)
	assert.Contains(t, string(body), `booking_transitions_total{from="confirmed",to="checked-in"} 1`)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/v1/rooms",status="200"} 1`)
}
