package timezone

import (
	"fmt"
	"sync/atomic"
	"time"

	"hotel/shared/constant"
)

var location atomic.Pointer[time.Location]

// Init sets the hotel's local timezone from an IANA name. An empty name keeps UTC.
func Init(name string) error {
	if name == "" {
		location.Store(time.UTC)

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", name, err)
	}

	location.Store(loc)

	return nil
}

// Location is the hotel's local timezone, UTC until Init runs.
func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now is the current wall clock at the hotel.
func Now() time.Time {
	return time.Now().In(Location())
}

// Today is the hotel's current calendar date as midnight UTC.
func Today() time.Time {
	return DateOf(Now())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

// Format renders t in the hotel's timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate reads a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date: %w", value, err)
	}

	return parsed, nil
}

// DateOf drops the clock part of t, keeping its calendar date in t's own location,
// and returns that date at midnight UTC. Stay dates are compared at this granularity.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of calendar days from start to end.
// It is negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int(DateOf(end).Sub(DateOf(start)).Hours() / constant.HoursPerDay)
}
