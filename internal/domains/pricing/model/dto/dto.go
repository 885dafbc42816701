package dto

import (
	"fmt"
	"time"

	"hotel/internal/domains/pricing/engine"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type QuoteRequest struct {
	RoomType roomModel.RoomType `json:"room_type" validate:"required,enum"`
	CheckIn  string             `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string             `json:"check_out" validate:"required,datetime=2006-01-02"`
}

// Dates parses the stay dates. Format errors are already ruled out by validation.
func (q *QuoteRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.ParseDate(q.CheckIn)
	if err != nil {
		return checkIn, checkOut, fmt.Errorf("invalid check_in: %w", err)
	}

	checkOut, err = timezone.ParseDate(q.CheckOut)
	if err != nil {
		return checkIn, checkOut, fmt.Errorf("invalid check_out: %w", err)
	}

	return checkIn, checkOut, nil
}

type NightResponse struct {
	Date    string          `json:"date"`
	Rate    decimal.Decimal `json:"rate"`
	Weekend bool            `json:"weekend"`
	Peak    bool            `json:"peak"`
}

type QuoteResponse struct {
	RoomType     roomModel.RoomType `json:"room_type"`
	CheckIn      string             `json:"check_in"`
	CheckOut     string             `json:"check_out"`
	Nights       int                `json:"nights"`
	PerNight     []NightResponse    `json:"per_night"`
	Total        decimal.Decimal    `json:"total"`
	Currency     string             `json:"currency"`
	UsedFallback bool               `json:"used_fallback"`
}

func (q *QuoteResponse) FromQuote(quote engine.Quote) {
	q.RoomType = quote.RoomType
	q.CheckIn = quote.CheckIn.Format(constant.DateOnlyFormat)
	q.CheckOut = quote.CheckOut.Format(constant.DateOnlyFormat)
	q.Nights = quote.Nights
	q.Total = quote.Total
	q.Currency = quote.Currency
	q.UsedFallback = quote.UsedFallback

	q.PerNight = make([]NightResponse, len(quote.PerNight))
	for i, night := range quote.PerNight {
		q.PerNight[i] = NightResponse{
			Date:    night.Date.Format(constant.DateOnlyFormat),
			Rate:    night.Rate,
			Weekend: night.Weekend,
			Peak:    night.Peak,
		}
	}
}
