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
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/guest/service"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func newService(t *testing.T) (*bookingMocks.MockBooking, service.Guest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	bookings := bookingMocks.NewMockBooking(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return bookings, service.New(bookings, &config.Config{}, cache, mocks.NewOtel())
}

func stay(name, email string, status bookingModel.Status, amount int64) bookingModel.Booking {
	checkIn := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	return bookingModel.Booking{
		GuestName:     name,
		GuestEmail:    email,
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 2),
		BookingStatus: status,
		PaymentStatus: bookingModel.PaymentPaid,
		TotalAmount:   decimal.NewFromInt(amount),
	}
}

func TestGuestService_GetAll(t *testing.T) {
	bookings, svc := newService(t)

	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gDto.FilterGroup{}).Return([]bookingModel.Booking{
		stay("Sara", "sara@example.com", bookingModel.StatusCheckedOut, 100),
		stay("Ali", "ALI@example.com", bookingModel.StatusCheckedIn, 50),
		stay("", "anon@example.com", bookingModel.StatusCheckedOut, 10),
	}, nil)

	res, err := svc.GetAll(context.Background(), true)
	require.NoError(t, err)

	require.Equal(t, 2, res.TotalData)
	assert.Equal(t, "ali@example.com", res.Guests[0].Email)
	assert.Equal(t, 1, res.Guests[0].TotalStays)
	assert.Equal(t, "2020-01-01", *res.Guests[0].LastStay)
	assert.Empty(t, res.Guests[0].Bookings)
	assert.Equal(t, 1, res.Guests[0].TotalBookings)
}

func TestGuestService_Get(t *testing.T) {
	t.Run("matches email case-insensitively", func(t *testing.T) {
		bookings, svc := newService(t)

		bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
				require.Len(t, filter.Filters, 1)
				assert.Equal(t, "ali@example.com", filter.Filters[0].(gDto.Filter).Value)
				assert.Equal(t, gDto.FilterOperatorEqFold, filter.Filters[0].(gDto.Filter).Operator)

				return []bookingModel.Booking{stay("Ali", "Ali@Example.com", bookingModel.StatusCheckedOut, 75)}, nil
			})

		res, err := svc.Get(context.Background(), " Ali@Example.com", false)
		require.NoError(t, err)

		assert.Equal(t, "75", res.LifetimeRevenue.String())
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "N/A", res.Phone)
	})

	t.Run("unknown guest", func(t *testing.T) {
		bookings, svc := newService(t)

		bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.Get(context.Background(), "nobody@example.com", false)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("blank email", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.Get(context.Background(), "  ", false)
		assert.True(t, failure.IsValidation(err))
	})

	t.Run("store failure", func(t *testing.T) {
		bookings, svc := newService(t)

		bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, failure.Upstream(errors.New("timeout")))

		_, err := svc.Get(context.Background(), "ali@example.com", false)
		assert.True(t, failure.IsUpstream(err))
	})
}
