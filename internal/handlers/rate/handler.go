package rate

import (
	"hotel/infras/otel"
	"hotel/internal/domains/rate/model/dto"
	"hotel/internal/domains/rate/service"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamRoomType = "roomType"

type Handler struct {
	service service.Rate
	otel    otel.Otel
}

func New(service service.Rate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rates", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRates)
		routerGroup.Put("/", handler.ReplaceRates)
		routerGroup.Get("/{roomType}", handler.GetRate)
	})
}

// GetRates lists the configured nightly rates.
// @Summary Get all rates
// @Tags Rate
// @Produce json
// @Success 200 {object} response.Data[dto.GetRatesResponse] "Rate table"
// @Failure 500 {object} response.Error
// @Router /v1/rates [get]
func (handler *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRates")
	defer scope.End()

	rates, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rates)
}

// GetRate returns the rate of a single room type.
// @Summary Get a rate by room type
// @Tags Rate
// @Produce json
// @Param roomType path string true "Room type"
// @Success 200 {object} response.Data[dto.RateResponse] "Rate"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rates/{roomType} [get]
func (handler *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRate")
	defer scope.End()

	roomType := roomModel.RoomType(chi.URLParam(r, requestParamRoomType))

	rate, err := handler.service.Get(ctx, roomType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rate)
}

// ReplaceRates replaces the whole rate table.
// @Summary Replace all rates
// @Description Atomically replaces every rate entry. Room types absent from the request lose their rate.
// @Tags Rate
// @Accept json
// @Produce json
// @Param X-Staff-Name header string false "Staff member performing the change"
// @Param request body dto.ReplaceRatesRequest true "Complete rate table"
// @Success 200 {object} response.Data[dto.GetRatesResponse] "New rate table"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rates [put]
func (handler *Handler) ReplaceRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceRates")
	defer scope.End()

	req := dto.ReplaceRatesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rates, err := handler.service.ReplaceAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace rates")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rates replaced by user " + user)

	response.WithJSON(w, http.StatusOK, rates)
}
