package engine

import (
	"fmt"
	"strings"
	"time"
)

const monthDayLayout = "01-02"

// SeasonCalendar decides whether a night falls in peak season.
type SeasonCalendar interface {
	IsPeak(night time.Time) bool
}

// NoPeakSeason never reports a peak night.
type NoPeakSeason struct{}

func (NoPeakSeason) IsPeak(time.Time) bool { return false }

// SeasonWindow is an inclusive month-day range that repeats every year.
// A window whose end precedes its start wraps over the new year (12-15 to 01-05).
type SeasonWindow struct {
	Start monthDay
	End   monthDay
}

type monthDay struct {
	Month time.Month
	Day   int
}

func (m monthDay) before(other monthDay) bool {
	if m.Month != other.Month {
		return m.Month < other.Month
	}

	return m.Day < other.Day
}

func (w SeasonWindow) contains(day monthDay) bool {
	if w.End.before(w.Start) {
		return !day.before(w.Start) || !w.End.before(day)
	}

	return !day.before(w.Start) && !w.End.before(day)
}

// SeasonWindows is a SeasonCalendar built from configured windows.
type SeasonWindows []SeasonWindow

func (s SeasonWindows) IsPeak(night time.Time) bool {
	day := monthDay{Month: night.Month(), Day: night.Day()}

	for _, window := range s {
		if window.contains(day) {
			return true
		}
	}

	return false
}

// ParseSeasonWindows reads "MM-DD:MM-DD" entries. Blank entries are skipped.
func ParseSeasonWindows(entries []string) (SeasonWindows, error) {
	windows := SeasonWindows{}

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		start, end, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("season window %q must look like MM-DD:MM-DD", entry)
		}

		from, err := parseMonthDay(start)
		if err != nil {
			return nil, fmt.Errorf("season window %q: %w", entry, err)
		}

		to, err := parseMonthDay(end)
		if err != nil {
			return nil, fmt.Errorf("season window %q: %w", entry, err)
		}

		windows = append(windows, SeasonWindow{Start: from, End: to})
	}

	return windows, nil
}

func parseMonthDay(value string) (monthDay, error) {
	// Parsed against a leap year so 02-29 is accepted.
	parsed, err := time.Parse("2006-"+monthDayLayout, "2024-"+strings.TrimSpace(value))
	if err != nil {
		return monthDay{}, fmt.Errorf("invalid month-day %q: %w", value, err)
	}

	return monthDay{Month: parsed.Month(), Day: parsed.Day()}, nil
}
