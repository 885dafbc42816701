package router

import (
	"net/http"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/internal/handlers/analytics"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/guest"
	"hotel/internal/handlers/inquiry"
	"hotel/internal/handlers/pricing"
	"hotel/internal/handlers/rate"
	"hotel/internal/handlers/room"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Room      room.Handler
	Rate      rate.Handler
	Pricing   pricing.Handler
	Booking   booking.Handler
	Analytics analytics.Handler
	Guest     guest.Handler
	Inquiry   inquiry.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Metrics        metrics.Metrics
	Config         *config.Config
}

// SetupRoutes registers the middleware stack and every route. chi requires the
// middleware to be in place before the first route.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)

	if corsConfig := r.Config.App.CORS; corsConfig.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	router.Use(r.Middleware.Tracing)
	router.Use(r.Middleware.Metrics)

	router.Method(http.MethodGet, "/metrics", r.Metrics.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())
		routerGroup.Use(r.Middleware.Staff)

		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Rate.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, metrics metrics.Metrics, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Metrics:        metrics,
		Config:         cfg,
	}
}
