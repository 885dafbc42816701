package analytics

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/analytics/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReport)
	})
}

// GetReport builds the occupancy and revenue report of a date range.
// @Summary Occupancy and revenue report
// @Description Occupancy rate, ADR, RevPAR, cancellation rate and daily series. Defaults to the last 30 days.
// @Tags Analytics
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param currency query string false "Report currency, defaults to the application currency"
// @Success 200 {object} response.Data[dto.ReportResponse] "Report"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/analytics [get]
func (handler *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReport")
	defer scope.End()

	today := timezone.Today()
	period := gDto.DateRange{}

	if err := period.FromRequest(r, today.AddDate(0, 0, 1-constant.DefaultReportDays), today); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid report range")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	report, err := handler.service.Report(ctx, period, r.URL.Query().Get(constant.RequestParamCurrency))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build analytics report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Analytics report built successfully")

	response.WithJSON(w, http.StatusOK, report)
}
