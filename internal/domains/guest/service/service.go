package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"hotel/config"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepository "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/guest/aggregator"
	"hotel/internal/domains/guest/model/dto"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest    = constant.CachePrefixGuest + ":get"
	cacheGetAllGuest = constant.CachePrefixGuest + ":gets"
)

type Guest interface {
	GetAll(ctx context.Context, includeCurrentStay bool) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, email string, includeCurrentStay bool) (dto.GuestResponse, error)
}

type serviceImpl struct {
	bookings bookingRepository.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingRepository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// GetAll rebuilds the guest directory from every booking.
func (s *serviceImpl) GetAll(ctx context.Context, includeCurrentStay bool) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllGuest, strconv.FormatBool(includeCurrentStay), timezone.Today().Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	bookings, err := s.load(ctx, gDto.FilterGroup{})
	if err != nil {
		return res, err
	}

	res.FromProfiles(aggregator.Build(bookings, aggregator.Options{IncludeCurrentStay: includeCurrentStay, Now: timezone.Now()}))

	s.save(ctx, cacheKey, res)

	return res, nil
}

// Get returns one guest profile with the full booking history. Emails match case-insensitively.
func (s *serviceImpl) Get(ctx context.Context, email string, includeCurrentStay bool) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := aggregator.Key(email)
	if key == constant.Empty {
		return res, failure.Validation("email is required") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetGuest, key, strconv.FormatBool(includeCurrentStay), timezone.Today().Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	bookings, err := s.load(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{gDto.Filter{
			Field:    bookingModel.FieldGuestEmail,
			Operator: gDto.FilterOperatorEqFold,
			Value:    key,
			Table:    bookingModel.TableName,
		}},
	})
	if err != nil {
		return res, err
	}

	profiles := aggregator.Build(bookings, aggregator.Options{IncludeCurrentStay: includeCurrentStay, Now: timezone.Now()})
	if len(profiles) == 0 {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromProfile(profiles[0], true)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, filter gDto.FilterGroup) ([]bookingModel.Booking, error) {
	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	bookings, err := s.bookings.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for guests")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) save(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()
}
