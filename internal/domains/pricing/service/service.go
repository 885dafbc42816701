package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/internal/domains/pricing/engine"
	rateService "hotel/internal/domains/rate/service"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

type Pricing interface {
	Quote(ctx context.Context, roomType roomModel.RoomType, checkIn, checkOut time.Time) (engine.Quote, error)
}

type serviceImpl struct {
	rates   rateService.Rate
	engine  *engine.Engine
	metrics metrics.Metrics
	otel    otel.Otel
}

// NewEngine builds the pricing engine from the configured fallback prices and peak seasons.
func NewEngine(cfg *config.Config) (*engine.Engine, error) {
	defaults, err := engine.BuiltinDefaultPrices().WithOverrides(cfg.Pricing.DefaultPrices)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICING_DEFAULT_PRICES: %w", err)
	}

	seasons, err := engine.ParseSeasonWindows(cfg.Pricing.PeakSeasons)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICING_PEAK_SEASONS: %w", err)
	}

	if len(seasons) == 0 {
		log.Warn().Msg("No peak season configured, season multipliers will never apply")
	}

	return engine.New(seasons, defaults, cfg.App.Currency), nil
}

func New(rates rateService.Rate, eng *engine.Engine, metrics metrics.Metrics, otel otel.Otel) Pricing {
	return &serviceImpl{
		rates:   rates,
		engine:  eng,
		metrics: metrics,
		otel:    otel,
	}
}

func (s *serviceImpl) Quote(ctx context.Context, roomType roomModel.RoomType, checkIn, checkOut time.Time) (res engine.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	rate, err := s.rates.Find(ctx, roomType)
	if err != nil {
		log.Error().Err(err).Str("room_type", string(roomType)).Msg("failed to load rate entry")

		return res, fmt.Errorf("failed to load rate entry: %w", err)
	}

	res, err = s.engine.Quote(roomType, checkIn, checkOut, rate)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if res.UsedFallback {
		s.metrics.PricingFallback(string(roomType))
		log.Warn().Str("room_type", string(roomType)).Str("total", res.Total.String()).Msg("no rate entry, quoted from default price table")
	}

	scope.SetAttributes(map[string]any{
		"room_type": string(roomType),
		"nights":    res.Nights,
		"fallback":  res.UsedFallback,
	})

	return res, nil
}
