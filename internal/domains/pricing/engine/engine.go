// Package engine quotes the price of a stay. It performs no I/O: rate entries, the
// fallback table and the season calendar are all handed in.
package engine

import (
	"time"

	rateModel "hotel/internal/domains/rate/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type Night struct {
	Date    time.Time
	Rate    decimal.Decimal
	Weekend bool
	Peak    bool
}

type Quote struct {
	RoomType     roomModel.RoomType
	CheckIn      time.Time
	CheckOut     time.Time
	Nights       int
	PerNight     []Night
	Total        decimal.Decimal
	Currency     string
	UsedFallback bool
}

type Engine struct {
	calendar SeasonCalendar
	defaults DefaultPrices
	currency string
}

// New builds an engine. A nil calendar means no night is ever peak season.
func New(calendar SeasonCalendar, defaults DefaultPrices, currency string) *Engine {
	if calendar == nil {
		calendar = NoPeakSeason{}
	}

	return &Engine{
		calendar: calendar,
		defaults: defaults,
		currency: currency,
	}
}

// IsWeekend reports whether the night starting on day is charged the weekend rate.
// Friday and Saturday nights are.
func IsWeekend(day time.Time) bool {
	weekday := day.Weekday()

	return weekday == time.Friday || weekday == time.Saturday
}

// Quote prices a stay night by night. rate may be nil, in which case the fallback
// table is used and the quote is flagged.
func (e *Engine) Quote(roomType roomModel.RoomType, checkIn, checkOut time.Time, rate *rateModel.Rate) (Quote, error) {
	checkIn = timezone.DateOf(checkIn)
	checkOut = timezone.DateOf(checkOut)

	nights := timezone.DaysBetween(checkIn, checkOut)
	if nights <= 0 {
		return Quote{}, failure.InvalidDateRange("check-out must be after check-in") // nolint:wrapcheck
	}

	one := decimal.NewFromInt(1)
	quote := Quote{
		RoomType: roomType,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Nights:   nights,
		PerNight: make([]Night, 0, nights),
		Currency: e.currency,
	}

	var base decimal.Decimal

	season, weekend := one, one

	switch {
	case rate != nil:
		base = rate.BasePrice
		season = rate.SeasonMultiplier
		weekend = rate.WeekendMultiplier

		if rate.Currency != "" {
			quote.Currency = rate.Currency
		}
	default:
		price, ok := e.defaults[roomType]
		if !ok {
			return Quote{}, failure.Validation("no rate or default price for room type " + string(roomType)) // nolint:wrapcheck
		}

		base = price
		quote.UsedFallback = true
	}

	// Multipliers never discount a stay.
	season = decimal.Max(season, one)
	weekend = decimal.Max(weekend, one)

	total := decimal.Zero

	for i := range nights {
		day := checkIn.AddDate(0, 0, i)
		night := Night{
			Date:    day,
			Rate:    base,
			Weekend: IsWeekend(day),
			Peak:    e.calendar.IsPeak(day),
		}

		if night.Weekend {
			night.Rate = night.Rate.Mul(weekend)
		}

		if night.Peak {
			night.Rate = night.Rate.Mul(season)
		}

		total = total.Add(night.Rate)
		quote.PerNight = append(quote.PerNight, night)
	}

	quote.Total = total

	return quote, nil
}
