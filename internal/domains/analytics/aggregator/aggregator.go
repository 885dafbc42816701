// Package aggregator computes occupancy and revenue figures over a snapshot of bookings.
//
// Every function is pure. A booking belongs to a report when its check-in or check-out
// falls inside the inclusive range, or when it spans the whole range. Money figures only
// sum paid bookings in the report currency; paid bookings in any other currency are
// counted in Report.ExcludedForeignCurrency instead of being mixed in.
package aggregator

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

const percent = 100

type Options struct {
	From       time.Time
	To         time.Time
	TotalRooms int
	Currency   string
}

type DailyCount struct {
	Date  time.Time
	Count int
}

type DailyRate struct {
	Date time.Time
	Rate float64
}

type RoomTypeRevenue struct {
	RoomType roomModel.RoomType
	Revenue  decimal.Decimal
}

type RoomTypeCount struct {
	RoomType roomModel.RoomType
	Bookings int
}

type Report struct {
	Period                  gDto.DateRange
	TotalRooms              int
	Currency                string
	TotalBookings           int
	CancelledBookings       int
	PaidBookings            int
	OccupiedRoomNights      int
	OccupancyRate           float64
	ADR                     decimal.Decimal
	RevPAR                  decimal.Decimal
	Revenue                 decimal.Decimal
	CancellationRate        float64
	BookingsPerDay          []DailyCount
	OccupancyPerDay         []DailyRate
	RevenueByRoomType       []RoomTypeRevenue
	BookingsByRoomType      []RoomTypeCount
	ExcludedForeignCurrency int
}

// Build runs every aggregate over the bookings that fall in the options' range.
func Build(bookings []model.Booking, opts Options) (Report, error) {
	period := gDto.DateRange{From: timezone.DateOf(opts.From), To: timezone.DateOf(opts.To)}

	if period.To.Before(period.From) {
		return Report{}, failure.InvalidDateRange("to must not be before from") // nolint:wrapcheck
	}

	if opts.TotalRooms < 0 {
		return Report{}, failure.Validation("total rooms cannot be negative") // nolint:wrapcheck
	}

	inRange := InRange(bookings, period)
	paid, foreign := PaidIn(inRange, opts.Currency)
	days := period.Days()
	orn := OccupiedRoomNights(inRange, period)
	revenue := sumAmounts(paid)

	report := Report{
		Period:                  period,
		TotalRooms:              opts.TotalRooms,
		Currency:                opts.Currency,
		TotalBookings:           len(inRange),
		CancelledBookings:       countCancelled(inRange),
		PaidBookings:            len(paid),
		OccupiedRoomNights:      orn,
		OccupancyRate:           OccupancyRate(orn, opts.TotalRooms, days),
		ADR:                     ADR(paid),
		RevPAR:                  RevPAR(paid, opts.TotalRooms, days),
		Revenue:                 revenue,
		CancellationRate:        CancellationRate(inRange),
		BookingsPerDay:          BookingsPerDay(inRange, period),
		OccupancyPerDay:         OccupancyPerDay(inRange, period, opts.TotalRooms),
		RevenueByRoomType:       RevenueByRoomType(paid),
		BookingsByRoomType:      BookingsByRoomType(paid),
		ExcludedForeignCurrency: foreign,
	}

	return report, nil
}

// InRange keeps the bookings that belong to the period.
func InRange(bookings []model.Booking, period gDto.DateRange) []model.Booking {
	res := make([]model.Booking, 0, len(bookings))

	for _, booking := range bookings {
		if booking.InRange(period) {
			res = append(res, booking)
		}
	}

	return res
}

// PaidIn returns the paid bookings priced in currency, and how many paid bookings
// were left out because they use another one. A booking without a currency counts
// as the report currency.
func PaidIn(bookings []model.Booking, currency string) (paid []model.Booking, foreign int) {
	for _, booking := range bookings {
		if !booking.IsPaid() {
			continue
		}

		if booking.Currency != constant.Empty && currency != constant.Empty && !strings.EqualFold(booking.Currency, currency) {
			foreign++

			continue
		}

		paid = append(paid, booking)
	}

	return paid, foreign
}

// OccupiedRoomNights counts the nights of non-cancelled stays that fall inside the
// period. A night belongs to the date it starts on.
func OccupiedRoomNights(bookings []model.Booking, period gDto.DateRange) int {
	end := period.To.AddDate(0, 0, 1)
	total := 0

	for _, booking := range bookings {
		if booking.IsCancelled() {
			continue
		}

		start := latest(timezone.DateOf(booking.CheckIn), period.From)
		stop := earliest(timezone.DateOf(booking.CheckOut), end)

		if nights := timezone.DaysBetween(start, stop); nights > 0 {
			total += nights
		}
	}

	return total
}

// OccupancyRate is occupied room-nights over available room-nights, in percent.
func OccupancyRate(occupiedRoomNights, totalRooms, days int) float64 {
	available := totalRooms * days
	if available <= 0 {
		return 0
	}

	return float64(occupiedRoomNights) / float64(available) * percent
}

// ADR is paid revenue per paid room-night, over the full length of each paid stay.
func ADR(paid []model.Booking) decimal.Decimal {
	nights := 0
	for _, booking := range paid {
		nights += max(booking.Nights(), 0)
	}

	if nights == 0 {
		return decimal.Zero
	}

	return sumAmounts(paid).Div(decimal.NewFromInt(int64(nights)))
}

// RevPAR is paid revenue per available room-night.
func RevPAR(paid []model.Booking, totalRooms, days int) decimal.Decimal {
	available := totalRooms * days
	if available <= 0 {
		return decimal.Zero
	}

	return sumAmounts(paid).Div(decimal.NewFromInt(int64(available)))
}

func CancellationRate(bookings []model.Booking) float64 {
	if len(bookings) == 0 {
		return 0
	}

	return float64(countCancelled(bookings)) / float64(len(bookings)) * percent
}

// BookingsPerDay buckets bookings by check-in date. Every day of the period is present.
func BookingsPerDay(bookings []model.Booking, period gDto.DateRange) []DailyCount {
	counts := make(map[time.Time]int, len(bookings))
	for _, booking := range bookings {
		counts[timezone.DateOf(booking.CheckIn)]++
	}

	series := make([]DailyCount, 0, period.Days())
	for day := period.From; !day.After(period.To); day = day.AddDate(0, 0, 1) {
		series = append(series, DailyCount{Date: day, Count: counts[day]})
	}

	return series
}

// OccupancyPerDay is, for each day, the share of rooms held by a non-cancelled stay
// covering that night, in percent.
func OccupancyPerDay(bookings []model.Booking, period gDto.DateRange, totalRooms int) []DailyRate {
	series := make([]DailyRate, 0, period.Days())

	for day := period.From; !day.After(period.To); day = day.AddDate(0, 0, 1) {
		covering := 0

		for _, booking := range bookings {
			if booking.IsCancelled() {
				continue
			}

			if !day.Before(timezone.DateOf(booking.CheckIn)) && day.Before(timezone.DateOf(booking.CheckOut)) {
				covering++
			}
		}

		series = append(series, DailyRate{Date: day, Rate: OccupancyRate(covering, totalRooms, 1)})
	}

	return series
}

// RevenueByRoomType sums paid revenue per room type, highest first.
func RevenueByRoomType(paid []model.Booking) []RoomTypeRevenue {
	totals := map[roomModel.RoomType]decimal.Decimal{}
	for _, booking := range paid {
		totals[booking.RoomType] = totals[booking.RoomType].Add(booking.TotalAmount)
	}

	res := make([]RoomTypeRevenue, 0, len(totals))
	for roomType, revenue := range totals {
		res = append(res, RoomTypeRevenue{RoomType: roomType, Revenue: revenue})
	}

	slices.SortFunc(res, func(a, b RoomTypeRevenue) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}

		return cmp.Compare(a.RoomType, b.RoomType)
	})

	return res
}

// BookingsByRoomType counts paid bookings per room type, most first.
func BookingsByRoomType(paid []model.Booking) []RoomTypeCount {
	counts := map[roomModel.RoomType]int{}
	for _, booking := range paid {
		counts[booking.RoomType]++
	}

	res := make([]RoomTypeCount, 0, len(counts))
	for roomType, count := range counts {
		res = append(res, RoomTypeCount{RoomType: roomType, Bookings: count})
	}

	slices.SortFunc(res, func(a, b RoomTypeCount) int {
		if c := cmp.Compare(b.Bookings, a.Bookings); c != 0 {
			return c
		}

		return cmp.Compare(a.RoomType, b.RoomType)
	})

	return res
}

func sumAmounts(bookings []model.Booking) decimal.Decimal {
	total := decimal.Zero
	for _, booking := range bookings {
		total = total.Add(booking.TotalAmount)
	}

	return total
}

func countCancelled(bookings []model.Booking) int {
	count := 0

	for _, booking := range bookings {
		if booking.IsCancelled() {
			count++
		}
	}

	return count
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}
