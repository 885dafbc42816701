package dto

import (
	"errors"
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"net/http"
	"time"
)

var ErrInvalidDateRange = errors.New("to must not be before from")

// DateRange is an inclusive calendar range. Both ends are normalised to midnight UTC.
type DateRange struct {
	From time.Time
	To   time.Time
}

// FromRequest reads the from/to query parameters (YYYY-MM-DD). Missing values fall
// back to the given defaults.
func (d *DateRange) FromRequest(r *http.Request, defaultFrom, defaultTo time.Time) error {
	from, err := parseDateQuery(r, constant.RequestParamFrom)
	if err != nil {
		return fmt.Errorf("invalid %s parameter: %w", constant.RequestParamFrom, err)
	}

	to, err := parseDateQuery(r, constant.RequestParamTo)
	if err != nil {
		return fmt.Errorf("invalid %s parameter: %w", constant.RequestParamTo, err)
	}

	d.From = timezone.DateOf(defaultFrom)
	if from != nil {
		d.From = *from
	}

	d.To = timezone.DateOf(defaultTo)
	if to != nil {
		d.To = *to
	}

	if d.To.Before(d.From) {
		return ErrInvalidDateRange
	}

	return nil
}

// Days returns the number of calendar days in the range, both ends included.
func (d DateRange) Days() int {
	if d.To.Before(d.From) {
		return 0
	}

	return timezone.DaysBetween(d.From, d.To) + 1
}

// Contains reports whether the calendar date of t lies inside the range.
func (d DateRange) Contains(t time.Time) bool {
	day := timezone.DateOf(t)

	return !day.Before(d.From) && !day.After(d.To)
}

func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := timezone.ParseDate(value)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &parsed, nil
}
