package dto

import (
	"time"

	bookingDto "hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/guest/aggregator"
	"hotel/shared/constant"

	"github.com/shopspring/decimal"
)

type GuestResponse struct {
	Email           string                       `json:"email"`
	Name            string                       `json:"name"`
	Phone           string                       `json:"phone"`
	Nationality     string                       `json:"nationality"`
	TotalStays      int                          `json:"total_stays"`
	LifetimeRevenue decimal.Decimal              `json:"lifetime_revenue"`
	LastStay        *string                      `json:"last_stay"`
	UpcomingStay    *string                      `json:"upcoming_stay"`
	TotalBookings   int                          `json:"total_bookings"`
	Bookings        []bookingDto.BookingResponse `json:"bookings,omitempty"`
}

// FromProfile copies a profile. The booking list is only filled when withBookings is set.
func (r *GuestResponse) FromProfile(profile aggregator.Profile, withBookings bool) {
	r.Email = profile.Email
	r.Name = profile.Name
	r.Phone = profile.Phone
	r.Nationality = profile.Nationality
	r.TotalStays = profile.TotalStays
	r.LifetimeRevenue = profile.LifetimeRevenue
	r.LastStay = formatDate(profile.LastStay)
	r.UpcomingStay = formatDate(profile.UpcomingStay)
	r.TotalBookings = len(profile.Bookings)

	if !withBookings {
		return
	}

	r.Bookings = make([]bookingDto.BookingResponse, len(profile.Bookings))
	for i, booking := range profile.Bookings {
		r.Bookings[i].FromModel(booking)
	}
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromProfiles(profiles []aggregator.Profile) {
	r.TotalData = len(profiles)

	r.Guests = make([]GuestResponse, len(profiles))
	for i, profile := range profiles {
		r.Guests[i].FromProfile(profile, false)
	}
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := value.Format(constant.DateOnlyFormat)

	return &formatted
}
