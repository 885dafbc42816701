package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/analytics/aggregator"
	"hotel/internal/domains/analytics/model/dto"
	bookingRepository "hotel/internal/domains/booking/repository"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheGetReport = constant.CachePrefixAnalytics + ":report"

type Analytics interface {
	Report(ctx context.Context, period gDto.DateRange, currency string) (dto.ReportResponse, error)
}

type serviceImpl struct {
	bookings bookingRepository.Booking
	rooms    roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingRepository.Booking, rooms roomRepository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Analytics {
	return &serviceImpl{
		bookings: bookings,
		rooms:    rooms,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Report aggregates the bookings of the period against the whole room inventory.
// An empty currency means the application currency.
func (s *serviceImpl) Report(ctx context.Context, period gDto.DateRange, currency string) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report")
	defer scope.End()
	defer scope.TraceIfError(err)

	if currency == constant.Empty {
		currency = s.cfg.App.Currency
	}

	currency = strings.ToUpper(currency)

	cacheKey := shared.BuildCacheKey(cacheGetReport,
		period.From.Format(constant.DateOnlyFormat), period.To.Format(constant.DateOnlyFormat), currency)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for analytics report")

		return res, nil
	}

	totalRooms, err := s.rooms.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	bookings, err := s.bookings.GetInRange(ctx, period.From, period.To)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings in range")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	report, err := aggregator.Build(bookings, aggregator.Options{
		From:       period.From,
		To:         period.To,
		TotalRooms: totalRooms,
		Currency:   currency,
	})
	if err != nil {
		return res, fmt.Errorf("failed to build analytics report: %w", err)
	}

	if report.ExcludedForeignCurrency > 0 {
		log.Warn().
			Int("excluded", report.ExcludedForeignCurrency).
			Str("currency", currency).
			Msg("paid bookings in another currency left out of revenue figures")
	}

	res.FromReport(report)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save analytics report to cache")
		}
	}()

	return res, nil
}
