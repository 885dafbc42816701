package pricing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/pricing/engine"
	serviceMocks "hotel/internal/domains/pricing/service/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/handlers/pricing"
	"hotel/shared/constant"
	"hotel/shared/failure"
)

func newRouter(t *testing.T) (*serviceMocks.MockPricing, chi.Router) {
	t.Helper()

	svc := serviceMocks.NewMockPricing(gomock.NewController(t))
	handler := pricing.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_Quote(t *testing.T) {
	t.Run("quotes the stay", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			Quote(gomock.Any(), roomModel.RoomTypeDeluxe, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, roomType roomModel.RoomType, checkIn, checkOut time.Time) (engine.Quote, error) {
				assert.Equal(t, "2024-07-05", checkIn.Format(constant.DateOnlyFormat))
				assert.Equal(t, "2024-07-07", checkOut.Format(constant.DateOnlyFormat))

				return engine.Quote{
					RoomType: roomType,
					CheckIn:  checkIn,
					CheckOut: checkOut,
					Nights:   2,
					PerNight: []engine.Night{
						{Date: checkIn, Rate: decimal.NewFromInt(6500), Weekend: true},
						{Date: checkIn.AddDate(0, 0, 1), Rate: decimal.NewFromInt(6500), Weekend: true},
					},
					Total:    decimal.NewFromInt(13000),
					Currency: "PKR",
				}, nil
			})

		recorder := httptest.NewRecorder()
		body := `{"room_type":"deluxe","check_in":"2024-07-05","check_out":"2024-07-07"}`
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/pricing/quote", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"total":"13000"`)
		assert.Contains(t, recorder.Body.String(), `"date":"2024-07-06"`)
	})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "unknown room type", body: `{"room_type":"penthouse","check_in":"2024-07-05","check_out":"2024-07-07"}`, status: http.StatusBadRequest},
		{name: "malformed date", body: `{"room_type":"deluxe","check_in":"05/07/2024","check_out":"2024-07-07"}`, status: http.StatusBadRequest},
		{name: "missing check-out", body: `{"room_type":"deluxe","check_in":"2024-07-05"}`, status: http.StatusBadRequest},
		{name: "not json", body: `room_type=deluxe`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newRouter(t)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/pricing/quote", strings.NewReader(tt.body)))

			assert.Equal(t, tt.status, recorder.Code)
		})
	}

	t.Run("inverted stay", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			Quote(gomock.Any(), roomModel.RoomTypeDeluxe, gomock.Any(), gomock.Any()).
			Return(engine.Quote{}, failure.InvalidDateRange("check-out must be after check-in"))

		recorder := httptest.NewRecorder()
		body := `{"room_type":"deluxe","check_in":"2024-07-07","check_out":"2024-07-05"}`
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/pricing/quote", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
}
