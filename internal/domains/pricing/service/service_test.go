package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	metricsMocks "hotel/infras/metrics/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/pricing/service"
	rateMocks "hotel/internal/domains/rate/service/mocks"
	rateModel "hotel/internal/domains/rate/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/failure"
)

func newService(t *testing.T, cfg *config.Config) (*rateMocks.MockRate, *metricsMocks.MockMetrics, service.Pricing) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRates := rateMocks.NewMockRate(ctrl)
	mockMetrics := metricsMocks.NewMockMetrics(ctrl)

	eng, err := service.NewEngine(cfg)
	require.NoError(t, err)

	return mockRates, mockMetrics, service.New(mockRates, eng, mockMetrics, mocks.NewOtel())
}

func stay() (time.Time, time.Time) {
	checkIn := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	return checkIn, checkIn.AddDate(0, 0, 2)
}

func TestPricingService_Quote(t *testing.T) {
	t.Run("uses the rate entry", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.Currency = "PKR"

		mockRates, _, svc := newService(t, cfg)

		mockRates.EXPECT().Find(gomock.Any(), roomModel.RoomTypeStandard).Return(&rateModel.Rate{
			RoomType:          roomModel.RoomTypeStandard,
			BasePrice:         decimal.NewFromInt(5000),
			Currency:          "PKR",
			SeasonMultiplier:  decimal.NewFromInt(1),
			WeekendMultiplier: decimal.NewFromInt(1),
		}, nil)

		checkIn, checkOut := stay()

		quote, err := svc.Quote(context.Background(), roomModel.RoomTypeStandard, checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, "10000", quote.Total.String())
		assert.False(t, quote.UsedFallback)
	})

	t.Run("fallback is counted", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.Currency = "PKR"
		cfg.Pricing.DefaultPrices = map[string]string{"deluxe": "8000"}

		mockRates, mockMetrics, svc := newService(t, cfg)

		mockRates.EXPECT().Find(gomock.Any(), roomModel.RoomTypeDeluxe).Return(nil, nil)
		mockMetrics.EXPECT().PricingFallback("deluxe").Times(1)

		checkIn, checkOut := stay()

		quote, err := svc.Quote(context.Background(), roomModel.RoomTypeDeluxe, checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, "16000", quote.Total.String())
		assert.True(t, quote.UsedFallback)
	})

	t.Run("rate lookup failure", func(t *testing.T) {
		mockRates, _, svc := newService(t, &config.Config{})

		mockRates.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, failure.Upstream(errors.New("timeout")))

		checkIn, checkOut := stay()

		_, err := svc.Quote(context.Background(), roomModel.RoomTypeDeluxe, checkIn, checkOut)
		assert.True(t, failure.IsUpstream(err))
	})

	t.Run("reversed dates", func(t *testing.T) {
		mockRates, _, svc := newService(t, &config.Config{})

		mockRates.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, nil)

		checkIn, checkOut := stay()

		_, err := svc.Quote(context.Background(), roomModel.RoomTypeDeluxe, checkOut, checkIn)
		assert.True(t, failure.IsInvalidDateRange(err))
	})
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Pricing.PeakSeasons = []string{"summer"}

	_, err := service.NewEngine(cfg)
	assert.Error(t, err)

	cfg = &config.Config{}
	cfg.Pricing.DefaultPrices = map[string]string{"suite": "100"}

	_, err = service.NewEngine(cfg)
	assert.Error(t, err)
}
