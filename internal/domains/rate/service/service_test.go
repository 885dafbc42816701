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
	"hotel/infras/otel/mocks"
	rateMocks "hotel/internal/domains/rate/mocks"
	"hotel/internal/domains/rate/model"
	"hotel/internal/domains/rate/model/dto"
	"hotel/internal/domains/rate/service"
	roomModel "hotel/internal/domains/room/model"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/failure"
)

func newService(t *testing.T) (*rateMocks.MockRate, *cacheMocks.MockRedisCache, service.Rate) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := rateMocks.NewMockRate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Currency = "PKR"

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func TestRateService_Find(t *testing.T) {
	t.Run("unknown room type", func(t *testing.T) {
		_, _, svc := newService(t)

		_, err := svc.Find(context.Background(), roomModel.RoomType("penthouse"))
		assert.True(t, failure.IsValidation(err))
	})

	t.Run("no rate configured", func(t *testing.T) {
		mockRepo, mockCache, svc := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), "rate:get:deluxe", gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Rate{}, nil)

		rate, err := svc.Find(context.Background(), roomModel.RoomTypeDeluxe)
		require.NoError(t, err)
		assert.Nil(t, rate)
	})

	t.Run("configured rate", func(t *testing.T) {
		mockRepo, mockCache, svc := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Rate{
			RoomType:  roomModel.RoomTypeDeluxe,
			BasePrice: decimal.NewFromInt(9000),
		}, nil)

		rate, err := svc.Find(context.Background(), roomModel.RoomTypeDeluxe)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		require.NotNil(t, rate)
		assert.True(t, decimal.NewFromInt(9000).Equal(rate.BasePrice))
	})

	t.Run("store failure", func(t *testing.T) {
		mockRepo, mockCache, svc := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Rate{}, failure.Upstream(errors.New("timeout")))

		_, err := svc.Find(context.Background(), roomModel.RoomTypeDeluxe)
		assert.True(t, failure.IsUpstream(err))
	})
}

func TestRateService_Get_NotFound(t *testing.T) {
	mockRepo, mockCache, svc := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Rate{}, nil)

	_, err := svc.Get(context.Background(), roomModel.RoomTypeFamily)
	assert.True(t, failure.IsNotFound(err))
}

func TestRateService_ReplaceAll(t *testing.T) {
	mockRepo, _, svc := newService(t)

	weekend := decimal.RequireFromString("1.2")
	req := dto.ReplaceRatesRequest{
		Rates: []dto.RateRequest{
			{RoomType: roomModel.RoomTypeStandard, BasePrice: decimal.NewFromInt(6000), WeekendMultiplier: &weekend},
		},
	}

	mockRepo.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rates []model.Rate) error {
			require.Len(t, rates, 1)
			assert.Equal(t, "PKR", rates[0].Currency)
			assert.True(t, decimal.NewFromInt(1).Equal(rates[0].SeasonMultiplier))
			assert.True(t, weekend.Equal(rates[0].WeekendMultiplier))
			assert.Equal(t, "manager", rates[0].CreatedBy)

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "manager")
	res, err := svc.ReplaceAll(ctx, req)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Len(t, res.Rates, 1)
}
