package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/metrics"
	otelMocks "hotel/infras/otel/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
)

func newServer(t *testing.T) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	registry := metrics.New()
	appMiddleware := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(gomock.NewController(t)), registry)

	return New(cfg, router.New(router.DomainHandlers{}, appMiddleware, registry, cfg))
}

func TestHealth(t *testing.T) {
	server := newServer(t)
	handler := server.Handler()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	server.setState(ServerStateInGracePeriod)

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newServer(t).Handler()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestHandlerIsBuiltOnce(t *testing.T) {
	server := newServer(t)

	assert.Same(t, server.Handler(), server.Handler())
}
