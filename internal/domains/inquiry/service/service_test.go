package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	inquiryMocks "hotel/internal/domains/inquiry/mocks"
	"hotel/internal/domains/inquiry/model"
	"hotel/internal/domains/inquiry/model/dto"
	"hotel/internal/domains/inquiry/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

type fixture struct {
	repo  *inquiryMocks.MockInquiry
	cache *cacheMocks.MockRedisCache
	svc   service.Inquiry
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:  inquiryMocks.NewMockInquiry(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func statusFilter(filter gDto.FilterGroup) []model.Status {
	for _, item := range filter.Filters {
		if f, ok := item.(gDto.Filter); ok && f.Field == model.FieldStatus {
			statuses, _ := f.Value.([]model.Status)

			return statuses
		}
	}

	return nil
}

func TestInquiryService_Create(t *testing.T) {
	f := newFixture(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "front-desk")

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inquiry model.Inquiry) error {
			assert.Equal(t, model.StatusNew, inquiry.Status)
			assert.Equal(t, "Late arrival", inquiry.Subject)
			assert.Equal(t, "front-desk", inquiry.CreatedBy)
			assert.NotEmpty(t, inquiry.ID)

			return nil
		})

	res, err := f.svc.Create(ctx, dto.CreateInquiryRequest{
		Name:    "Ali",
		Email:   "ali@example.com",
		Subject: " Late arrival ",
		Message: "Can I check in at 2am?",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusNew, res.Status)
	assert.Nil(t, res.RepliedAt)
}

func TestInquiryService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "inquiry:get:missing", gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestInquiryService_Reply(t *testing.T) {
	t.Run("new or replied inquiries accept a reply", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
				assert.Equal(t, "See you at 2am", fields[model.FieldReply])
				assert.Equal(t, model.StatusReplied, fields[model.FieldStatus])
				assert.Contains(t, fields, model.FieldRepliedAt)
				assert.Equal(t, []model.Status{model.StatusNew, model.StatusReplied}, statusFilter(filter))

				return 1, nil
			})
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{ID: "inq-1", Status: model.StatusReplied, Reply: "See you at 2am"}, nil)

		res, err := f.svc.Reply(context.Background(), dto.ReplyRequest{Reply: "  See you at 2am "}, "inq-1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusReplied, res.Status)
	})

	t.Run("resolved inquiry", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Reply(context.Background(), dto.ReplyRequest{Reply: "Too late"}, "inq-1")
		assert.True(t, failure.IsStateConflict(err))
	})

	t.Run("missing inquiry", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Reply(context.Background(), dto.ReplyRequest{Reply: "Hello"}, "nope")
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("blank reply", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Reply(context.Background(), dto.ReplyRequest{Reply: "   "}, "inq-1")
		assert.True(t, failure.IsValidation(err))
	})
}

func TestInquiryService_UpdateStatus(t *testing.T) {
	t.Run("resolve", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusResolved, fields[model.FieldStatus])
				assert.Equal(t, []model.Status{model.StatusNew, model.StatusReplied}, statusFilter(filter))

				return 1, nil
			})
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{ID: "inq-1", Status: model.StatusResolved}, nil)

		res, err := f.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: model.StatusResolved}, "inq-1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusResolved, res.Status)
	})

	t.Run("moving back to new is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{ID: "inq-1", Status: model.StatusReplied}, nil)

		_, err := f.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: model.StatusNew}, "inq-1")
		assert.True(t, failure.IsStateConflict(err))
	})

	t.Run("replied cannot be set twice", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: model.StatusReplied}, "inq-1")
		assert.True(t, failure.IsStateConflict(err))
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: "archived"}, "inq-1")
		assert.True(t, failure.IsValidation(err))
	})
}
