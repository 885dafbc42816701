// Package aggregator derives the guest directory from bookings. Profiles are never
// stored; they are rebuilt from the booking list on every read.
package aggregator

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type Options struct {
	// IncludeCurrentStay also counts checked-in bookings as stays.
	IncludeCurrentStay bool
	Now                time.Time
}

type Profile struct {
	Email           string
	Name            string
	Phone           string
	Nationality     string
	TotalStays      int
	LifetimeRevenue decimal.Decimal
	LastStay        *time.Time
	UpcomingStay    *time.Time
	Bookings        []model.Booking

	latest time.Time
}

// Key is the grouping key of a guest email.
func Key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Build groups bookings by lowercase email. Bookings without a guest name or email
// are skipped. The result is sorted by name, case-insensitively, then by email.
func Build(bookings []model.Booking, opts Options) []Profile {
	if opts.Now.IsZero() {
		opts.Now = timezone.Now()
	}

	today := timezone.DateOf(timezone.ToAppTime(opts.Now))
	index := make(map[string]int)
	profiles := make([]Profile, 0)

	for _, booking := range bookings {
		key := Key(booking.GuestEmail)
		if key == constant.Empty || strings.TrimSpace(booking.GuestName) == constant.Empty {
			continue
		}

		i, ok := index[key]
		if !ok {
			i = len(profiles)
			index[key] = i
			profiles = append(profiles, Profile{Email: key, LifetimeRevenue: decimal.Zero})
		}

		profiles[i].add(booking, today, opts.IncludeCurrentStay)
	}

	for i := range profiles {
		profiles[i].Phone = orNotAvailable(profiles[i].Phone)
		profiles[i].Nationality = orNotAvailable(profiles[i].Nationality)
	}

	slices.SortStableFunc(profiles, func(a, b Profile) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.Email, b.Email),
		)
	})

	return profiles
}

func (p *Profile) add(booking model.Booking, today time.Time, includeCurrentStay bool) {
	p.Bookings = append(p.Bookings, booking)

	if len(p.Bookings) == 1 || booking.CreatedAt.After(p.latest) {
		p.latest = booking.CreatedAt
		p.Name = strings.TrimSpace(booking.GuestName)
		p.Phone = strings.TrimSpace(booking.GuestPhone)
		p.Nationality = strings.TrimSpace(booking.Nationality)
	}

	if IsStay(booking.BookingStatus, includeCurrentStay) {
		p.TotalStays++
	}

	if booking.IsPaid() {
		p.LifetimeRevenue = p.LifetimeRevenue.Add(booking.TotalAmount)
	}

	checkIn := timezone.DateOf(booking.CheckIn)

	if !checkIn.After(today) {
		if p.LastStay == nil || checkIn.After(*p.LastStay) {
			p.LastStay = &checkIn
		}

		return
	}

	if booking.IsCancelled() {
		return
	}

	if p.UpcomingStay == nil || checkIn.Before(*p.UpcomingStay) {
		p.UpcomingStay = &checkIn
	}
}

// IsStay reports whether a booking status counts as a completed stay.
func IsStay(status model.Status, includeCurrentStay bool) bool {
	if status == model.StatusCheckedOut {
		return true
	}

	return includeCurrentStay && status == model.StatusCheckedIn
}

func orNotAvailable(value string) string {
	if value == constant.Empty {
		return constant.NotAvailable
	}

	return value
}
