package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/rate/model"
	"hotel/internal/domains/rate/model/dto"
	"hotel/internal/domains/rate/repository"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRate    = "rate:get"
	cacheGetAllRate = "rate:gets"
)

type Rate interface {
	GetAll(ctx context.Context) (dto.GetRatesResponse, error)
	Get(ctx context.Context, roomType roomModel.RoomType) (dto.RateResponse, error)
	// Find returns the rate entry of a room type, or nil when none is configured.
	Find(ctx context.Context, roomType roomModel.RoomType) (*model.Rate, error)
	ReplaceAll(ctx context.Context, req dto.ReplaceRatesRequest) (dto.GetRatesResponse, error)
}

type serviceImpl struct {
	repo  repository.Rate
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Rate, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Rate {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllRate)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rates")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldRoomType, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rates")

		return res, fmt.Errorf("failed to get rates: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, roomType roomModel.RoomType) (res dto.RateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	rate, err := s.Find(ctx, roomType)
	if err != nil {
		return res, err
	}

	if rate == nil {
		return res, failure.NotFound("no rate configured for " + string(roomType)) // nolint:wrapcheck
	}

	res.FromModel(*rate)

	return res, nil
}

func (s *serviceImpl) Find(ctx context.Context, roomType roomModel.RoomType) (res *model.Rate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Find")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = roomType.Validate(); err != nil {
		return nil, failure.Validation(err.Error()) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetRate, string(roomType))

	var cached model.Rate

	err = s.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rate")

		return &cached, nil
	}

	rate, err := s.repo.Get(ctx, shared.FilterByID(string(roomType), model.FieldRoomType, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate")

		return nil, fmt.Errorf("failed to get rate: %w", err)
	}

	if rate.RoomType == constant.Empty {
		return nil, nil //nolint:nilnil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, rate, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rate to cache")
		}
	}()

	return &rate, nil
}

func (s *serviceImpl) ReplaceAll(ctx context.Context, req dto.ReplaceRatesRequest) (res dto.GetRatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReplaceAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	rates := req.ToModels(user, s.cfg.App.Currency)

	if err = s.repo.ReplaceAll(ctx, rates); err != nil {
		log.Error().Err(err).Msg("failed to replace rates")

		return res, fmt.Errorf("failed to replace rates: %w", err)
	}

	res.FromModels(rates)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetRate)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRate)
	}()

	return res, nil
}
