package inquiry

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/inquiry/model"
	"hotel/internal/domains/inquiry/model/dto"
	"hotel/internal/domains/inquiry/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInquiry)
		routerGroup.Get("/", handler.GetInquiries)
		routerGroup.Get("/{id}", handler.GetInquiryByID)
		routerGroup.Post("/{id}/reply", handler.ReplyInquiry)
		routerGroup.Patch("/{id}/status", handler.UpdateInquiryStatus)
	})
}

// CreateInquiry records a contact-form message.
// @Summary Create an inquiry
// @Description Store a message from the contact form with status new.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Inquiry"
// @Success 201 {object} response.Data[dto.InquiryResponse] "Inquiry created"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/inquiries [post]
func (handler *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	inquiry, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry created successfully")

	response.WithJSON(w, http.StatusCreated, inquiry)
}

// GetInquiries lists inquiries.
// @Summary Get all inquiries
// @Description Retrieve inquiries with optional filtering and pagination.
// @Tags Inquiry
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param email query string false "Filter by sender email"
// @Success 200 {object} response.Data[dto.GetInquiriesResponse] "List of inquiries"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/inquiries [get]
func (handler *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup, err := inquiryFilters(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid inquiry filter")

		response.WithError(w, err)

		return
	}

	inquiries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiries retrieved successfully")

	response.WithJSON(w, http.StatusOK, inquiries)
}

// GetInquiryByID retrieves an inquiry by its ID.
// @Summary Get an inquiry by ID
// @Tags Inquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Data[dto.InquiryResponse] "Inquiry"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/inquiries/{id} [get]
func (handler *Handler) GetInquiryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	inquiry, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiry by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry retrieved successfully")

	response.WithJSON(w, http.StatusOK, inquiry)
}

// ReplyInquiry stores a reply and marks the inquiry replied.
// @Summary Reply to an inquiry
// @Description Re-sending overwrites the previous reply. Resolved inquiries cannot be replied to.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param X-Staff-Name header string false "Staff member performing the change"
// @Param request body dto.ReplyRequest true "Reply"
// @Success 200 {object} response.Data[dto.InquiryResponse] "Inquiry replied"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/inquiries/{id}/reply [post]
func (handler *Handler) ReplyInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplyInquiry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.ReplyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	inquiry, err := handler.service.Reply(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reply to inquiry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inquiry replied by user " + user)

	response.WithJSON(w, http.StatusOK, inquiry)
}

// UpdateInquiryStatus moves an inquiry forward.
// @Summary Update inquiry status
// @Description Status only advances: new, replied, resolved.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param X-Staff-Name header string false "Staff member performing the change"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.InquiryResponse] "Inquiry updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/inquiries/{id}/status [patch]
func (handler *Handler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInquiryStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	inquiry, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inquiry status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inquiry status updated by user " + user)

	response.WithJSON(w, http.StatusOK, inquiry)
}

func inquiryFilters(r *http.Request) (gDto.FilterGroup, error) {
	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status := model.Status(query.Get(model.FieldStatus)); status != constant.Empty {
		if err := status.Validate(); err != nil {
			return filterGroup, failure.BadRequest(err) // nolint:wrapcheck
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if email := query.Get(model.FieldEmail); email != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEqFold,
			Value:    email,
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}
