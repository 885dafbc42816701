package metrics

//go:generate go run go.uber.org/mock/mockgen -source=./metrics.go -destination=./mocks/metrics_mock.go -package=mocks

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	labelRoomType = "room_type"
	labelMethod   = "method"
	labelRoute    = "route"
	labelStatus   = "status"
	labelFrom     = "from"
	labelTo       = "to"
)

type Metrics interface {
	PricingFallback(roomType string)
	BookingTransition(from, to string)
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
	Handler() http.Handler
}

type metricsImpl struct {
	registry        *prometheus.Registry
	pricingFallback *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func New() Metrics {
	registry := prometheus.NewRegistry()

	m := &metricsImpl{
		registry: registry,
		pricingFallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pricing_fallback_total",
			Help: "Quotes priced from the default price table because no rate entry exists.",
		}, []string{labelRoomType}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_transitions_total",
			Help: "Booking status changes persisted, by previous and new status.",
		}, []string{labelFrom, labelTo}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{labelMethod, labelRoute, labelStatus}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{labelMethod, labelRoute}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.pricingFallback,
		m.transitions,
		m.httpRequests,
		m.httpDuration,
	)

	log.Info().Msg("Metrics registry initialized")

	return m
}

func (m *metricsImpl) PricingFallback(roomType string) {
	m.pricingFallback.WithLabelValues(roomType).Inc()
}

func (m *metricsImpl) BookingTransition(from, to string) {
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *metricsImpl) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *metricsImpl) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
