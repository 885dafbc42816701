//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	analyticsService "hotel/internal/domains/analytics/service"
	bookingEvent "hotel/internal/domains/booking/event"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	guestService "hotel/internal/domains/guest/service"
	inquiryRepository "hotel/internal/domains/inquiry/repository"
	inquiryService "hotel/internal/domains/inquiry/service"
	pricingService "hotel/internal/domains/pricing/service"
	rateRepository "hotel/internal/domains/rate/repository"
	rateService "hotel/internal/domains/rate/service"
	roomConsumer "hotel/internal/domains/room/consumer"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"

	analyticsHandler "hotel/internal/handlers/analytics"
	bookingHandler "hotel/internal/handlers/booking"
	guestHandler "hotel/internal/handlers/guest"
	inquiryHandler "hotel/internal/handlers/inquiry"
	pricingHandler "hotel/internal/handlers/pricing"
	rateHandler "hotel/internal/handlers/rate"
	roomHandler "hotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	metrics.New,
	provideKafka,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var rateDomain = wire.NewSet(
	rateRepository.New,
	rateService.New,
)

var pricingDomain = wire.NewSet(
	pricingService.NewEngine,
	pricingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.NewPublisher,
	provideLifecycle,
	bookingService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var domains = wire.NewSet(
	roomDomain,
	rateDomain,
	pricingDomain,
	bookingDomain,
	analyticsService.New,
	guestService.New,
	inquiryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	rateHandler.New,
	pricingHandler.New,
	bookingHandler.New,
	analyticsHandler.New,
	guestHandler.New,
	inquiryHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}

func InitializeWorker() (*roomConsumer.Consumer, func(), error) {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		s3.New,
		provideKafka,
		sharedHelpers,
		roomDomain,
		roomConsumer.New,
	)

	return &roomConsumer.Consumer{}, nil, nil
}
