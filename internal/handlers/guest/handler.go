package guest

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/guest/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{email}", handler.GetGuestByEmail)
	})
}

// GetGuests returns the guest directory.
// @Summary Get all guests
// @Description Guest profiles grouped by email, sorted by name. Stays count checked-out bookings, plus checked-in ones with include_current_stay.
// @Tags Guest
// @Produce json
// @Param include_current_stay query boolean false "Count checked-in bookings as stays"
// @Success 200 {object} response.Data[dto.GetGuestsResponse] "Guest directory"
// @Failure 502 {object} response.Error
// @Router /v1/guests [get]
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	guests, err := handler.service.GetAll(ctx, includeCurrentStay(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuestByEmail returns one guest with the full booking history.
// @Summary Get a guest by email
// @Description Email matching is case-insensitive.
// @Tags Guest
// @Produce json
// @Param email path string true "Guest email"
// @Param include_current_stay query boolean false "Count checked-in bookings as stays"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest profile"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/guests/{email} [get]
func (handler *Handler) GetGuestByEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByEmail")
	defer scope.End()

	email := chi.URLParam(r, constant.RequestParamEmail)

	guest, err := handler.service.Get(ctx, email, includeCurrentStay(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest retrieved successfully")

	response.WithJSON(w, http.StatusOK, guest)
}

func includeCurrentStay(r *http.Request) bool {
	value := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamIncludeCurrentStay))

	return value != nil && *value
}
