package timezone_test

import (
	"testing"
	"time"

	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("") })

	require.NoError(t, timezone.Init("Asia/Karachi"))
	assert.Equal(t, "Asia/Karachi", timezone.Location().String())
	assert.Equal(t, "Asia/Karachi", timezone.Now().Location().String())

	instant := time.Date(2024, 7, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-07-02 01:00", timezone.Format(instant, "2006-01-02 15:04"))

	require.NoError(t, timezone.Init(""))
	assert.Equal(t, time.UTC, timezone.Location())
}

func TestInitUnknownZone(t *testing.T) {
	assert.Error(t, timezone.Init("Mars/Olympus_Mons"))
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), parsed)

	_, err = timezone.ParseDate("31/12/2024")
	assert.Error(t, err)
}

func TestTodayIsMidnightUTC(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("PKT", 5*60*60)
	local := time.Date(2024, 7, 1, 23, 30, 0, 0, loc)

	got := timezone.DateOf(local)
	want := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "two nights",
			start: time.Date(2024, 7, 1, 14, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 7, 3, 11, 0, 0, 0, time.UTC),
			want:  2,
		},
		{
			name:  "same day",
			start: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 7, 1, 23, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "reversed",
			start: time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			want:  -2,
		},
		{
			name:  "across month end",
			start: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timezone.DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
