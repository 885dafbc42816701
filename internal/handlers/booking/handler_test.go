package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	serviceMocks "hotel/internal/domains/booking/service/mocks"
	"hotel/internal/handlers/booking"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func newRouter(t *testing.T) (*serviceMocks.MockBooking, chi.Router) {
	t.Helper()

	svc := serviceMocks.NewMockBooking(gomock.NewController(t))
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_ConfirmBooking(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Confirm(gomock.Any(), "b1").Return(dto.BookingResponse{ID: "b1", Reference: "HKH-000001", BookingStatus: model.StatusConfirmed}, nil)

	recorder := serve(router, http.MethodPost, "/bookings/b1/confirm", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"reference":"HKH-000001"`)
}

func TestHandler_CheckIn(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().CheckIn(gomock.Any(), dto.CheckInRequest{}, "b1").Return(dto.BookingResponse{ID: "b1"}, nil)

		recorder := serve(router, http.MethodPost, "/bookings/b1/check-in", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("notes and room", func(t *testing.T) {
		svc, router := newRouter(t)

		want := dto.CheckInRequest{Notes: "late arrival", RoomNumber: "101"}
		svc.EXPECT().CheckIn(gomock.Any(), want, "b1").Return(dto.BookingResponse{ID: "b1"}, nil)

		recorder := serve(router, http.MethodPost, "/bookings/b1/check-in", `{"notes":"late arrival","room_number":"101"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("room number too long", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := serve(router, http.MethodPost, "/bookings/b1/check-in", `{"room_number":"12345678901"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("too early", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().CheckIn(gomock.Any(), gomock.Any(), "b1").Return(dto.BookingResponse{}, failure.StateConflict("check-in opens the day before arrival"))

		recorder := serve(router, http.MethodPost, "/bookings/b1/check-in", "")

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestHandler_CancelBooking(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "cancelled", status: http.StatusOK},
		{name: "already checked out", err: failure.StateConflict("booking is checked-out"), status: http.StatusConflict},
		{name: "blank reason", err: failure.Validation("reason is required"), status: http.StatusBadRequest},
		{name: "unknown booking", err: failure.NotFound("booking not found"), status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			svc.EXPECT().
				Cancel(gomock.Any(), dto.CancelRequest{Reason: "guest left"}, "b1").
				Return(dto.BookingResponse{ID: "b1", BookingStatus: model.StatusCancelled}, tt.err)

			recorder := serve(router, http.MethodPost, "/bookings/b1/cancel", `{"reason":"guest left"}`)

			assert.Equal(t, tt.status, recorder.Code)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := serve(router, http.MethodPost, "/bookings/b1/cancel", `{"reason":`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_GetBookings(t *testing.T) {
	t.Run("status filter", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
				require.Len(t, filter.Filters, 1)

				statusFilter, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, model.FieldBookingStatus, statusFilter.Field)
				assert.Equal(t, model.StatusConfirmed, statusFilter.Value)

				return dto.GetBookingsResponse{}, nil
			})

		recorder := serve(router, http.MethodGet, "/bookings/?booking_status=confirmed", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := serve(router, http.MethodGet, "/bookings/?booking_status=lost", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
