package pricing

import (
	"hotel/infras/otel"
	"hotel/internal/domains/pricing/model/dto"
	"hotel/internal/domains/pricing/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pricing", func(routerGroup chi.Router) {
		routerGroup.Post("/quote", handler.Quote)
	})
}

// Quote prices a stay.
// @Summary Quote a stay
// @Description Nightly breakdown and total for a room type and date range. Friday and Saturday nights use the weekend multiplier.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Stay to price"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Quote"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/pricing/quote [post]
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequest(err))

		return
	}

	quote, err := handler.service.Quote(ctx, req.RoomType, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	res := dto.QuoteResponse{}
	res.FromQuote(quote)

	response.WithJSON(w, http.StatusOK, res)
}
