package lifecycle_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/booking/lifecycle"
	"hotel/internal/domains/booking/model"
	"hotel/shared/failure"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func clock(value string) func() time.Time {
	return func() time.Time {
		return date(value).Add(10 * time.Hour)
	}
}

func booking(status model.Status) model.Booking {
	return model.Booking{
		ID:            "b-1",
		CheckIn:       date("2025-03-10"),
		CheckOut:      date("2025-03-12"),
		GuestName:     "Ayesha Khan",
		GuestEmail:    "ayesha@example.com",
		GuestCount:    2,
		TotalAmount:   decimal.NewFromInt(12000),
		BookingStatus: status,
		PaymentStatus: model.PaymentPending,
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, lifecycle.CanTransition(model.StatusPending, model.StatusConfirmed))
	assert.True(t, lifecycle.CanTransition(model.StatusCheckedIn, model.StatusCancelled))
	assert.False(t, lifecycle.CanTransition(model.StatusPending, model.StatusCheckedIn))
	assert.False(t, lifecycle.CanTransition(model.StatusCheckedOut, model.StatusCancelled))

	assert.True(t, lifecycle.IsTerminal(model.StatusCheckedOut))
	assert.True(t, lifecycle.IsTerminal(model.StatusCancelled))
	assert.False(t, lifecycle.IsTerminal(model.StatusConfirmed))
}

func TestController_Confirm(t *testing.T) {
	controller := lifecycle.New(clock("2025-03-01"))

	got, err := controller.Confirm(booking(model.StatusPending))
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, got.BookingStatus)

	_, err = controller.Confirm(booking(model.StatusCancelled))
	assert.True(t, failure.IsStateConflict(err))
}

func TestController_CheckIn(t *testing.T) {
	tests := []struct {
		name    string
		today   string
		status  model.Status
		room    string
		wantErr func(error) bool
	}{
		{name: "on the day", today: "2025-03-10", status: model.StatusConfirmed, room: "101"},
		{name: "one day early", today: "2025-03-09", status: model.StatusConfirmed},
		{name: "late arrival", today: "2025-03-11", status: model.StatusConfirmed},
		{name: "two days early", today: "2025-03-08", status: model.StatusConfirmed, wantErr: failure.IsStateConflict},
		{name: "still pending", today: "2025-03-10", status: model.StatusPending, wantErr: failure.IsStateConflict},
		{name: "already checked in", today: "2025-03-10", status: model.StatusCheckedIn, wantErr: failure.IsStateConflict},
		{name: "bad room number", today: "2025-03-10", status: model.StatusConfirmed, room: "10-1", wantErr: failure.IsValidation},
		{name: "room number too long", today: "2025-03-10", status: model.StatusConfirmed, room: "ABCDEFGHIJK", wantErr: failure.IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := lifecycle.New(clock(tt.today))

			got, err := controller.CheckIn(booking(tt.status), "late dinner", tt.room)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusCheckedIn, got.BookingStatus)
			assert.Equal(t, "Check-in: late dinner", got.SpecialRequests)
			assert.Equal(t, tt.room, got.RoomNumber)
		})
	}
}

func TestController_CheckInAppendsNotes(t *testing.T) {
	controller := lifecycle.New(clock("2025-03-10"))

	current := booking(model.StatusConfirmed)
	current.SpecialRequests = "Extra pillow"

	got, err := controller.CheckIn(current, "  ", "")
	require.NoError(t, err)
	assert.Equal(t, "Extra pillow", got.SpecialRequests)

	got, err = controller.CheckOut(got, "minibar settled")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCheckedOut, got.BookingStatus)
	assert.Equal(t, "Extra pillow\nCheck-out: minibar settled", got.SpecialRequests)
}

func TestController_CheckOut(t *testing.T) {
	controller := lifecycle.New(clock("2025-03-12"))

	for _, status := range []model.Status{model.StatusPending, model.StatusConfirmed, model.StatusCheckedOut, model.StatusCancelled} {
		_, err := controller.CheckOut(booking(status), "")
		assert.True(t, failure.IsStateConflict(err), status)
	}
}

func TestController_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  model.Status
		reason  string
		wantErr func(error) bool
	}{
		{name: "pending", status: model.StatusPending, reason: "changed plans"},
		{name: "confirmed", status: model.StatusConfirmed, reason: " flight cancelled "},
		{name: "checked in", status: model.StatusCheckedIn, reason: "early departure"},
		{name: "empty reason", status: model.StatusPending, reason: "", wantErr: failure.IsValidation},
		{name: "whitespace reason", status: model.StatusConfirmed, reason: " \t ", wantErr: failure.IsValidation},
		{name: "already cancelled", status: model.StatusCancelled, reason: "again", wantErr: failure.IsStateConflict},
		{name: "checked out", status: model.StatusCheckedOut, reason: "refund", wantErr: failure.IsStateConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := lifecycle.New(clock("2025-03-01"))

			got, err := controller.Cancel(booking(tt.status), tt.reason)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
				assert.False(t, failure.IsUpstream(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusCancelled, got.BookingStatus)
			assert.NotEmpty(t, got.CancellationReason)
			assert.Equal(t, got.CancellationReason, strings.TrimSpace(tt.reason))
		})
	}
}

func TestController_ApplyPatch(t *testing.T) {
	controller := lifecycle.New(clock("2025-03-01"))

	t.Run("sets only given fields", func(t *testing.T) {
		phone := "+92 300 0000000"
		paid := model.PaymentPaid

		got, err := controller.ApplyPatch(booking(model.StatusConfirmed), lifecycle.Patch{
			GuestPhone:    &phone,
			PaymentStatus: &paid,
		})
		require.NoError(t, err)
		assert.Equal(t, phone, got.GuestPhone)
		assert.Equal(t, model.PaymentPaid, got.PaymentStatus)
		assert.Equal(t, "Ayesha Khan", got.GuestName)
		assert.True(t, decimal.NewFromInt(12000).Equal(got.TotalAmount))
	})

	t.Run("dates are not repriced", func(t *testing.T) {
		checkOut := date("2025-03-15")

		got, err := controller.ApplyPatch(booking(model.StatusConfirmed), lifecycle.Patch{CheckOut: &checkOut})
		require.NoError(t, err)
		assert.Equal(t, 5, got.Nights())
		assert.True(t, decimal.NewFromInt(12000).Equal(got.TotalAmount))
	})

	t.Run("reversed dates", func(t *testing.T) {
		checkIn := date("2025-03-12")

		original := booking(model.StatusConfirmed)

		got, err := controller.ApplyPatch(original, lifecycle.Patch{CheckIn: &checkIn})
		require.Error(t, err)
		assert.True(t, failure.IsInvalidDateRange(err))
		assert.Equal(t, original, got)
	})

	t.Run("leaving cancelled clears the reason", func(t *testing.T) {
		current := booking(model.StatusCancelled)
		current.CancellationReason = "duplicate"
		confirmed := model.StatusConfirmed

		got, err := controller.ApplyPatch(current, lifecycle.Patch{BookingStatus: &confirmed})
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, got.BookingStatus)
		assert.Empty(t, got.CancellationReason)
	})

	t.Run("range checks", func(t *testing.T) {
		zero := 0
		negative := decimal.NewFromInt(-1)
		unknown := model.Status("archived")
		blank := " "

		for _, patch := range []lifecycle.Patch{
			{GuestCount: &zero},
			{TotalAmount: &negative},
			{BookingStatus: &unknown},
			{GuestName: &blank},
		} {
			_, err := controller.ApplyPatch(booking(model.StatusPending), patch)
			assert.True(t, failure.IsValidation(err))
		}
	})
}
