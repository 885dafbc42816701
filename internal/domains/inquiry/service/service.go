package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/inquiry/model"
	"hotel/internal/domains/inquiry/model/dto"
	"hotel/internal/domains/inquiry/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetInquiry    = "inquiry:get"
	cacheGetAllInquiry = "inquiry:gets"
	cacheCountInquiry  = "inquiry:count"
)

type Inquiry interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (dto.InquiryResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInquiriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InquiryResponse, error)
	Reply(ctx context.Context, req dto.ReplyRequest, id string) (dto.InquiryResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.InquiryResponse, error)
}

type serviceImpl struct {
	repo  repository.Inquiry
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Inquiry, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inquiry {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	inquiry := req.ToModel(user)

	if err = s.repo.Insert(ctx, inquiry); err != nil {
		log.Error().Err(err).Msg("failed to create inquiry")

		return res, fmt.Errorf("failed to create inquiry: %w", err)
	}

	res.FromModel(inquiry)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInquiry)
		shared.InvalidateCaches(c, s.cache, cacheCountInquiry)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInquiry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiries")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count inquiries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries")

		return res, fmt.Errorf("failed to get inquiries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInquiry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries")

		return res, fmt.Errorf("failed to count inquiries: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiry count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInquiry, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiry")

		return res, nil
	}

	inquiry, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(inquiry)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiry to cache")
		}
	}()

	return res, nil
}

// Reply stores the reply text and moves the inquiry to replied. Sending again
// overwrites the text and refreshes replied_at; resolved inquiries are closed.
func (s *serviceImpl) Reply(ctx context.Context, req dto.ReplyRequest, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reply")
	defer scope.End()
	defer scope.TraceIfError(err)

	reply := strings.TrimSpace(req.Reply)
	if reply == constant.Empty {
		return res, failure.Validation("reply cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldReply] = reply
	updatedFields[model.FieldRepliedAt] = now
	updatedFields[model.FieldStatus] = model.StatusReplied

	if err = s.conditionalUpdate(ctx, id, model.Repliable, updatedFields, "a resolved inquiry cannot be replied to"); err != nil {
		return res, err
	}

	return s.reload(ctx, id)
}

// UpdateStatus only moves an inquiry forward: new, replied, resolved.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = req.Status.Validate(); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldStatus] = req.Status

	conflict := fmt.Sprintf("inquiry cannot move to %s from its current status", req.Status)
	if err = s.conditionalUpdate(ctx, id, req.Status.Before(), updatedFields, conflict); err != nil {
		return res, err
	}

	return s.reload(ctx, id)
}

// conditionalUpdate applies the fields only while the stored status is one of from.
func (s *serviceImpl) conditionalUpdate(ctx context.Context, id string, from []model.Status, fields map[string]any, conflict string) error {
	if len(from) == 0 {
		if _, err := s.find(ctx, id); err != nil {
			return err
		}

		return failure.StateConflict(conflict) // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorIn, Value: from, Table: model.TableName},
		},
	}

	affected, err := s.repo.UpdateAffected(ctx, fields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update inquiry")

		return fmt.Errorf("failed to update inquiry: %w", err)
	}

	if affected == 0 {
		exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if inquiry exists")

			return fmt.Errorf("failed to check if inquiry exists: %w", err)
		}

		if !exist {
			return failure.NotFound("inquiry not found") // nolint:wrapcheck
		}

		return failure.StateConflict(conflict) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Inquiry, error) {
	inquiry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiry")

		return inquiry, fmt.Errorf("failed to get inquiry: %w", err)
	}

	if inquiry.ID == constant.Empty {
		return inquiry, failure.NotFound("inquiry not found") // nolint:wrapcheck
	}

	return inquiry, nil
}

func (s *serviceImpl) reload(ctx context.Context, id string) (res dto.InquiryResponse, err error) {
	inquiry, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(inquiry)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetInquiry, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete inquiry from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllInquiry)
		shared.InvalidateCaches(c, s.cache, cacheCountInquiry)
	}()
}
