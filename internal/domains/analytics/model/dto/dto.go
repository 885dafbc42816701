package dto

import (
	"math"

	"hotel/internal/domains/analytics/aggregator"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"

	"github.com/shopspring/decimal"
)

const (
	moneyPlaces   = 2
	percentFactor = 100
)

type DailyCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type DailyRateResponse struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

type RoomTypeRevenueResponse struct {
	RoomType roomModel.RoomType `json:"room_type"`
	Revenue  decimal.Decimal    `json:"revenue"`
}

type RoomTypeCountResponse struct {
	RoomType roomModel.RoomType `json:"room_type"`
	Bookings int                `json:"bookings"`
}

type ReportResponse struct {
	From                    string                    `json:"from"`
	To                      string                    `json:"to"`
	Days                    int                       `json:"days"`
	TotalRooms              int                       `json:"total_rooms"`
	Currency                string                    `json:"currency"`
	TotalBookings           int                       `json:"total_bookings"`
	CancelledBookings       int                       `json:"cancelled_bookings"`
	PaidBookings            int                       `json:"paid_bookings"`
	OccupiedRoomNights      int                       `json:"occupied_room_nights"`
	OccupancyRate           float64                   `json:"occupancy_rate"`
	ADR                     decimal.Decimal           `json:"adr"`
	RevPAR                  decimal.Decimal           `json:"revpar"`
	Revenue                 decimal.Decimal           `json:"revenue"`
	CancellationRate        float64                   `json:"cancellation_rate"`
	BookingsPerDay          []DailyCountResponse      `json:"bookings_per_day"`
	OccupancyPerDay         []DailyRateResponse       `json:"occupancy_per_day"`
	RevenueByRoomType       []RoomTypeRevenueResponse `json:"revenue_by_room_type"`
	BookingsByRoomType      []RoomTypeCountResponse   `json:"bookings_by_room_type"`
	ExcludedForeignCurrency int                       `json:"excluded_foreign_currency"`
}

func (r *ReportResponse) FromReport(report aggregator.Report) {
	r.From = report.Period.From.Format(constant.DateOnlyFormat)
	r.To = report.Period.To.Format(constant.DateOnlyFormat)
	r.Days = report.Period.Days()
	r.TotalRooms = report.TotalRooms
	r.Currency = report.Currency
	r.TotalBookings = report.TotalBookings
	r.CancelledBookings = report.CancelledBookings
	r.PaidBookings = report.PaidBookings
	r.OccupiedRoomNights = report.OccupiedRoomNights
	r.OccupancyRate = roundPercent(report.OccupancyRate)
	r.ADR = report.ADR.Round(moneyPlaces)
	r.RevPAR = report.RevPAR.Round(moneyPlaces)
	r.Revenue = report.Revenue
	r.CancellationRate = roundPercent(report.CancellationRate)
	r.ExcludedForeignCurrency = report.ExcludedForeignCurrency

	r.BookingsPerDay = make([]DailyCountResponse, len(report.BookingsPerDay))
	for i, point := range report.BookingsPerDay {
		r.BookingsPerDay[i] = DailyCountResponse{Date: point.Date.Format(constant.DateOnlyFormat), Count: point.Count}
	}

	r.OccupancyPerDay = make([]DailyRateResponse, len(report.OccupancyPerDay))
	for i, point := range report.OccupancyPerDay {
		r.OccupancyPerDay[i] = DailyRateResponse{Date: point.Date.Format(constant.DateOnlyFormat), Rate: roundPercent(point.Rate)}
	}

	r.RevenueByRoomType = make([]RoomTypeRevenueResponse, len(report.RevenueByRoomType))
	for i, item := range report.RevenueByRoomType {
		r.RevenueByRoomType[i] = RoomTypeRevenueResponse{RoomType: item.RoomType, Revenue: item.Revenue}
	}

	r.BookingsByRoomType = make([]RoomTypeCountResponse, len(report.BookingsByRoomType))
	for i, item := range report.BookingsByRoomType {
		r.BookingsByRoomType[i] = RoomTypeCountResponse{RoomType: item.RoomType, Bookings: item.Bookings}
	}
}

// roundPercent keeps two decimals, e.g. 66.67.
func roundPercent(value float64) float64 {
	return math.Round(value*percentFactor) / percentFactor
}
