package analytics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/analytics/model/dto"
	serviceMocks "hotel/internal/domains/analytics/service/mocks"
	"hotel/internal/handlers/analytics"
	gDto "hotel/shared/dto"
)

func newRouter(t *testing.T) (*serviceMocks.MockAnalytics, chi.Router) {
	t.Helper()

	svc := serviceMocks.NewMockAnalytics(gomock.NewController(t))
	handler := analytics.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_GetReport(t *testing.T) {
	t.Run("explicit range", func(t *testing.T) {
		svc, router := newRouter(t)

		period := gDto.DateRange{
			From: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, time.July, 3, 0, 0, 0, 0, time.UTC),
		}
		svc.EXPECT().Report(gomock.Any(), period, "usd").Return(dto.ReportResponse{Currency: "USD"}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/analytics/?from=2024-07-01&to=2024-07-03&currency=usd", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"currency":"USD"`)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/analytics/?from=2024-07-03&to=2024-07-01", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/analytics/?from=July", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
