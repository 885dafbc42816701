package guest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/guest/model/dto"
	serviceMocks "hotel/internal/domains/guest/service/mocks"
	"hotel/internal/handlers/guest"
	"hotel/shared/failure"
)

func newRouter(t *testing.T) (*serviceMocks.MockGuest, chi.Router) {
	t.Helper()

	svc := serviceMocks.NewMockGuest(gomock.NewController(t))
	handler := guest.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_GetGuests_IncludeCurrentStay(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "absent", query: "", want: false},
		{name: "true", query: "?include_current_stay=true", want: true},
		{name: "numeric true", query: "?include_current_stay=1", want: true},
		{name: "false", query: "?include_current_stay=false", want: false},
		{name: "garbage", query: "?include_current_stay=maybe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			svc.EXPECT().GetAll(gomock.Any(), tt.want).Return(dto.GetGuestsResponse{TotalData: 0}, nil)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/guests/"+tt.query, nil))

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

func TestHandler_GetGuestByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Get(gomock.Any(), "amna@example.com", true).Return(dto.GuestResponse{Email: "amna@example.com", Name: "Amna"}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/guests/amna@example.com?include_current_stay=true", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"name":"Amna"`)
	})

	t.Run("unknown guest", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Get(gomock.Any(), "nobody@example.com", false).Return(dto.GuestResponse{}, failure.NotFound("guest not found"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/guests/nobody@example.com", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
