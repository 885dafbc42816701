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
	"hotel/internal/domains/booking/event"
	"hotel/internal/domains/booking/lifecycle"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/internal/domains/pricing/engine"
	pricingMocks "hotel/internal/domains/pricing/service/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/failure"
)

type fixture struct {
	repo      *bookingMocks.MockBooking
	rooms     *roomMocks.MockRoom
	pricing   *pricingMocks.MockPricing
	publisher *bookingMocks.MockPublisher
	metrics   *metricsMocks.MockMetrics
	cache     *cacheMocks.MockRedisCache
	published chan event.StatusChanged
	svc       service.Booking
}

func date(value string) time.Time {
	parsed, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Currency = "PKR"
	cfg.App.BookingPrefix = "HKH"

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		pricing:   pricingMocks.NewMockPricing(ctrl),
		publisher: bookingMocks.NewMockPublisher(ctrl),
		metrics:   metricsMocks.NewMockMetrics(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		published: make(chan event.StatusChanged, 1),
	}

	controller := lifecycle.New(func() time.Time {
		return date("2025-03-10").Add(9 * time.Hour)
	})

	f.svc = service.New(f.repo, f.rooms, f.pricing, f.publisher, controller, cfg, f.cache, f.metrics, mocks.NewOtel())

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.publisher.EXPECT().
		PublishStatusChanged(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evt event.StatusChanged) error {
			f.published <- evt

			return nil
		}).
		AnyTimes()

	return f
}

func (f fixture) awaitEvent(t *testing.T) event.StatusChanged {
	t.Helper()

	select {
	case evt := <-f.published:
		return evt
	case <-time.After(time.Second):
		t.Fatal("no booking event published")

		return event.StatusChanged{}
	}
}

func staffContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "front-desk")
}

func stored(status model.Status) model.Booking {
	return model.Booking{
		ID:            "b-1",
		Reference:     "HKH-000007",
		CheckIn:       date("2025-03-10"),
		CheckOut:      date("2025-03-12"),
		GuestName:     "Ayesha Khan",
		GuestEmail:    "ayesha@example.com",
		GuestCount:    2,
		RoomType:      roomModel.RoomTypeStandard,
		Currency:      "PKR",
		TotalAmount:   decimal.NewFromInt(12000),
		BookingStatus: status,
		PaymentStatus: model.PaymentPending,
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CheckIn:    "2025-03-10",
		CheckOut:   "2025-03-12",
		GuestName:  " Ayesha Khan ",
		GuestEmail: "ayesha@example.com",
		GuestCount: 2,
		RoomType:   roomModel.RoomTypeStandard,
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("quotes the stay when no total is given", func(t *testing.T) {
		f := newFixture(t)

		f.pricing.EXPECT().
			Quote(gomock.Any(), roomModel.RoomTypeStandard, date("2025-03-10"), date("2025-03-12")).
			Return(engine.Quote{Total: decimal.NewFromInt(12000), Currency: "PKR", Nights: 2}, nil)
		f.repo.EXPECT().NextReference(gomock.Any(), "HKH").Return("HKH-000008", nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, "HKH-000008", booking.Reference)
				assert.Equal(t, "Ayesha Khan", booking.GuestName)
				assert.Equal(t, model.StatusPending, booking.BookingStatus)
				assert.Equal(t, model.PaymentPending, booking.PaymentStatus)
				assert.Equal(t, "front-desk", booking.CreatedBy)
				assert.True(t, decimal.NewFromInt(12000).Equal(booking.TotalAmount))

				return nil
			})

		res, err := f.svc.Create(staffContext(), createRequest())
		require.NoError(t, err)
		assert.Equal(t, 2, res.Nights)
		assert.Equal(t, "PKR", res.Currency)
	})

	t.Run("walk-in with a room and a fixed total", func(t *testing.T) {
		f := newFixture(t)

		total := decimal.NewFromInt(9000)
		req := createRequest()
		req.TotalAmount = &total
		req.RoomNumber = "101"
		req.BookingStatus = model.StatusConfirmed

		f.rooms.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "r-1", Number: "101", Status: roomModel.StatusAvailable}, nil)
		f.repo.EXPECT().NextReference(gomock.Any(), "HKH").Return("HKH-000009", nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(staffContext(), req)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.BookingStatus)
		assert.Equal(t, "PKR", res.Currency)
		assert.True(t, total.Equal(res.TotalAmount))
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		f := newFixture(t)

		req := createRequest()
		req.CheckOut = req.CheckIn

		_, err := f.svc.Create(staffContext(), req)
		assert.True(t, failure.IsInvalidDateRange(err))
	})

	t.Run("occupied room", func(t *testing.T) {
		f := newFixture(t)

		total := decimal.NewFromInt(9000)
		req := createRequest()
		req.TotalAmount = &total
		req.RoomNumber = "101"

		f.rooms.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "r-1", Number: "101", Status: roomModel.StatusOccupied}, nil)

		_, err := f.svc.Create(staffContext(), req)
		assert.True(t, failure.IsStateConflict(err))
	})

	t.Run("pricing failure", func(t *testing.T) {
		f := newFixture(t)

		f.pricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(engine.Quote{}, failure.Validation("no price"))

		_, err := f.svc.Create(staffContext(), createRequest())
		assert.True(t, failure.IsValidation(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := f.svc.Get(context.Background(), "missing")
	assert.True(t, failure.IsNotFound(err))
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("persists and publishes", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusConfirmed), nil)
		f.repo.EXPECT().
			Transition(gomock.Any(), "b-1", model.StatusConfirmed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ model.Status, fields map[string]any) (int64, error) {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldBookingStatus])
				assert.Equal(t, "guest request", fields[model.FieldCancellationReason])
				assert.Equal(t, "front-desk", fields[constant.FieldModifiedBy])

				return 1, nil
			})
		f.metrics.EXPECT().BookingTransition(string(model.StatusConfirmed), string(model.StatusCancelled))

		res, err := f.svc.Cancel(staffContext(), dto.CancelRequest{Reason: " guest request "}, "b-1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, res.BookingStatus)

		evt := f.awaitEvent(t)
		assert.Equal(t, model.StatusConfirmed, evt.From)
		assert.Equal(t, model.StatusCancelled, evt.To)
	})

	t.Run("checked-out booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusCheckedOut), nil)

		_, err := f.svc.Cancel(staffContext(), dto.CancelRequest{Reason: "refund"}, "b-1")
		require.Error(t, err)
		assert.True(t, failure.IsStateConflict(err))
	})

	t.Run("empty reason", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusPending), nil)

		_, err := f.svc.Cancel(staffContext(), dto.CancelRequest{Reason: "   "}, "b-1")
		assert.True(t, failure.IsValidation(err))
	})
}

func TestBookingService_ConcurrentTransition(t *testing.T) {
	tests := []struct {
		name    string
		exist   bool
		wantErr func(error) bool
	}{
		{name: "status moved underneath", exist: true, wantErr: failure.IsStateConflict},
		{name: "deleted underneath", exist: false, wantErr: failure.IsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusPending), nil)
			f.repo.EXPECT().Transition(gomock.Any(), "b-1", model.StatusPending, gomock.Any()).Return(int64(0), nil)
			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.exist, nil)

			_, err := f.svc.Confirm(staffContext(), "b-1")
			require.Error(t, err)
			assert.True(t, tt.wantErr(err))
		})
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	t.Run("assigns an available room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusConfirmed), nil)
		f.rooms.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "r-1", Number: "204", Status: roomModel.StatusAvailable}, nil)
		f.repo.EXPECT().Transition(gomock.Any(), "b-1", model.StatusConfirmed, gomock.Any()).Return(int64(1), nil)
		f.metrics.EXPECT().BookingTransition(string(model.StatusConfirmed), string(model.StatusCheckedIn))

		res, err := f.svc.CheckIn(staffContext(), dto.CheckInRequest{RoomNumber: "204", Notes: "id verified"}, "b-1")
		require.NoError(t, err)
		assert.Equal(t, "204", res.RoomNumber)
		assert.Equal(t, "Check-in: id verified", res.SpecialRequests)

		evt := f.awaitEvent(t)
		assert.Equal(t, "204", evt.RoomNumber)
		assert.Equal(t, model.StatusCheckedIn, evt.To)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusConfirmed), nil)
		f.rooms.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := f.svc.CheckIn(staffContext(), dto.CheckInRequest{RoomNumber: "999"}, "b-1")
		assert.True(t, failure.IsValidation(err))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, failure.Upstream(errors.New("connection reset")))

		_, err := f.svc.CheckIn(staffContext(), dto.CheckInRequest{}, "b-1")
		assert.True(t, failure.IsUpstream(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	f := newFixture(t)

	paid := model.PaymentPaid

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusCheckedIn), nil)
	f.repo.EXPECT().
		Transition(gomock.Any(), "b-1", model.StatusCheckedIn, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ model.Status, fields map[string]any) (int64, error) {
			assert.Equal(t, model.PaymentPaid, fields[model.FieldPaymentStatus])
			assert.Equal(t, model.StatusCheckedIn, fields[model.FieldBookingStatus])

			return 1, nil
		})

	res, err := f.svc.Update(staffContext(), dto.UpdateBookingRequest{PaymentStatus: &paid}, "b-1")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, res.PaymentStatus)
}

func TestBookingService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().DeleteAffected(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	err := f.svc.Delete(staffContext(), "missing")
	assert.True(t, failure.IsNotFound(err))
}
