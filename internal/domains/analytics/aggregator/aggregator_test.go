package aggregator_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/analytics/aggregator"
	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

type stay struct {
	in, out  string
	amount   int64
	status   model.Status
	payment  model.PaymentStatus
	roomType roomModel.RoomType
	currency string
}

func bookings(stays ...stay) []model.Booking {
	res := make([]model.Booking, 0, len(stays))

	for _, s := range stays {
		status := s.status
		if status == "" {
			status = model.StatusCheckedOut
		}

		roomType := s.roomType
		if roomType == "" {
			roomType = roomModel.RoomTypeStandard
		}

		currency := s.currency
		if currency == "" {
			currency = "PKR"
		}

		res = append(res, model.Booking{
			CheckIn:       date(s.in),
			CheckOut:      date(s.out),
			TotalAmount:   decimal.NewFromInt(s.amount),
			BookingStatus: status,
			PaymentStatus: s.payment,
			RoomType:      roomType,
			Currency:      currency,
		})
	}

	return res
}

func period(from, to string) gDto.DateRange {
	return gDto.DateRange{From: date(from), To: date(to)}
}

func TestBuild_SingleStay(t *testing.T) {
	report, err := aggregator.Build(
		bookings(stay{in: "2024-07-01", out: "2024-07-03", amount: 200, payment: model.PaymentPaid}),
		aggregator.Options{From: date("2024-07-01"), To: date("2024-07-03"), TotalRooms: 1, Currency: "PKR"},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, report.OccupiedRoomNights)
	assert.InDelta(t, 66.67, report.OccupancyRate, 0.01)
	assert.True(t, decimal.NewFromInt(100).Equal(report.ADR), report.ADR.String())
	assert.InDelta(t, 66.67, report.RevPAR.InexactFloat64(), 0.01)
	assert.Equal(t, 0.0, report.CancellationRate)
	assert.Len(t, report.BookingsPerDay, 3)
	assert.Equal(t, 1, report.BookingsPerDay[0].Count)
	assert.Equal(t, []float64{100, 100, 0}, rates(report.OccupancyPerDay))

	// ADR scaled by occupancy approximates RevPAR for a single room type.
	assert.InDelta(t, report.RevPAR.InexactFloat64(), report.ADR.InexactFloat64()*report.OccupancyRate/100, 0.01)
}

func rates(series []aggregator.DailyRate) []float64 {
	res := make([]float64, len(series))
	for i, point := range series {
		res[i] = point.Rate
	}

	return res
}

func TestBuild_InvalidInput(t *testing.T) {
	_, err := aggregator.Build(nil, aggregator.Options{From: date("2024-07-03"), To: date("2024-07-01"), TotalRooms: 1})
	assert.True(t, failure.IsInvalidDateRange(err))

	_, err = aggregator.Build(nil, aggregator.Options{From: date("2024-07-01"), To: date("2024-07-03"), TotalRooms: -1})
	assert.True(t, failure.IsValidation(err))
}

func TestBuild_NoRoomsNoPaidBookings(t *testing.T) {
	report, err := aggregator.Build(
		bookings(stay{in: "2024-07-01", out: "2024-07-03", amount: 200, payment: model.PaymentPending}),
		aggregator.Options{From: date("2024-07-01"), To: date("2024-07-03"), TotalRooms: 0, Currency: "PKR"},
	)
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.OccupancyRate)
	assert.True(t, report.ADR.IsZero())
	assert.True(t, report.RevPAR.IsZero())
	assert.Empty(t, report.RevenueByRoomType)
	assert.Equal(t, []float64{0, 0, 0}, rates(report.OccupancyPerDay))
}

func TestInRange(t *testing.T) {
	all := bookings(
		stay{in: "2024-06-28", out: "2024-07-02"}, // check-out inside
		stay{in: "2024-07-05", out: "2024-07-09"}, // check-in inside
		stay{in: "2024-06-20", out: "2024-07-20"}, // spans the range
		stay{in: "2024-06-01", out: "2024-06-05"}, // before
		stay{in: "2024-07-11", out: "2024-07-12"}, // after
		stay{in: "2024-07-10", out: "2024-07-12"}, // check-in on the last day
	)

	got := aggregator.InRange(all, period("2024-07-01", "2024-07-10"))
	require.Len(t, got, 4)
	assert.Equal(t, date("2024-06-28"), got[0].CheckIn)
	assert.Equal(t, date("2024-07-10"), got[3].CheckIn)
}

func TestOccupiedRoomNights(t *testing.T) {
	tests := []struct {
		name  string
		stays []stay
		want  int
	}{
		{name: "inside", stays: []stay{{in: "2024-07-02", out: "2024-07-04"}}, want: 2},
		{name: "clipped at the start", stays: []stay{{in: "2024-06-28", out: "2024-07-03"}}, want: 2},
		{name: "clipped at the end", stays: []stay{{in: "2024-07-09", out: "2024-07-15"}}, want: 2},
		{name: "spanning", stays: []stay{{in: "2024-06-01", out: "2024-08-01"}}, want: 10},
		{name: "cancelled stays hold nothing", stays: []stay{{in: "2024-07-02", out: "2024-07-04", status: model.StatusCancelled}}, want: 0},
		{name: "check-out on the first day", stays: []stay{{in: "2024-06-28", out: "2024-07-01"}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregator.OccupiedRoomNights(bookings(tt.stays...), period("2024-07-01", "2024-07-10")))
		})
	}
}

func TestOccupancyRate_Bounds(t *testing.T) {
	for rooms := 0; rooms <= 5; rooms++ {
		for days := 1; days <= 5; days++ {
			for orn := 0; orn <= rooms*days; orn++ {
				rate := aggregator.OccupancyRate(orn, rooms, days)
				assert.GreaterOrEqual(t, rate, 0.0)
				assert.LessOrEqual(t, rate, 100.0)
			}
		}
	}

	assert.Equal(t, 0.0, aggregator.OccupancyRate(3, 0, 3))
}

func TestCancellationRate(t *testing.T) {
	assert.Equal(t, 0.0, aggregator.CancellationRate(nil))
	assert.Equal(t, 25.0, aggregator.CancellationRate(bookings(
		stay{in: "2024-07-01", out: "2024-07-02", status: model.StatusCancelled},
		stay{in: "2024-07-01", out: "2024-07-02"},
		stay{in: "2024-07-01", out: "2024-07-02"},
		stay{in: "2024-07-01", out: "2024-07-02"},
	)))
}

func TestBookingsPerDay_ZeroFilled(t *testing.T) {
	series := aggregator.BookingsPerDay(bookings(
		stay{in: "2024-07-03", out: "2024-07-05"},
		stay{in: "2024-07-03", out: "2024-07-04", status: model.StatusCancelled},
		stay{in: "2024-06-30", out: "2024-07-02"},
	), period("2024-07-01", "2024-07-04"))

	require.Len(t, series, 4)

	counts := make([]int, len(series))
	for i, point := range series {
		counts[i] = point.Count
	}

	assert.Equal(t, []int{0, 0, 2, 0}, counts)
	assert.Equal(t, date("2024-07-01"), series[0].Date)
	assert.Equal(t, date("2024-07-04"), series[3].Date)
}

func TestByRoomType(t *testing.T) {
	paid := bookings(
		stay{in: "2024-07-01", out: "2024-07-02", amount: 100, payment: model.PaymentPaid, roomType: roomModel.RoomTypeStandard},
		stay{in: "2024-07-01", out: "2024-07-02", amount: 100, payment: model.PaymentPaid, roomType: roomModel.RoomTypeStandard},
		stay{in: "2024-07-01", out: "2024-07-02", amount: 500, payment: model.PaymentPaid, roomType: roomModel.RoomTypeDeluxe},
		stay{in: "2024-07-01", out: "2024-07-02", amount: 500, payment: model.PaymentPaid, roomType: roomModel.RoomTypeFamily},
	)

	revenue := aggregator.RevenueByRoomType(paid)
	require.Len(t, revenue, 3)
	assert.Equal(t, roomModel.RoomTypeDeluxe, revenue[0].RoomType)
	assert.Equal(t, roomModel.RoomTypeFamily, revenue[1].RoomType)
	assert.Equal(t, roomModel.RoomTypeStandard, revenue[2].RoomType)
	assert.True(t, decimal.NewFromInt(200).Equal(revenue[2].Revenue))

	counts := aggregator.BookingsByRoomType(paid)
	require.Len(t, counts, 3)
	assert.Equal(t, roomModel.RoomTypeStandard, counts[0].RoomType)
	assert.Equal(t, 2, counts[0].Bookings)
	assert.Equal(t, roomModel.RoomTypeDeluxe, counts[1].RoomType)
}

func TestBuild_ForeignCurrencyExcluded(t *testing.T) {
	report, err := aggregator.Build(
		bookings(
			stay{in: "2024-07-01", out: "2024-07-03", amount: 200, payment: model.PaymentPaid},
			stay{in: "2024-07-01", out: "2024-07-03", amount: 50, payment: model.PaymentPaid, currency: "USD"},
		),
		aggregator.Options{From: date("2024-07-01"), To: date("2024-07-03"), TotalRooms: 2, Currency: "pkr"},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, report.ExcludedForeignCurrency)
	assert.Equal(t, 1, report.PaidBookings)
	assert.True(t, decimal.NewFromInt(200).Equal(report.Revenue))
	assert.Equal(t, 4, report.OccupiedRoomNights)
}
