// Package lifecycle holds the booking state machine. Controller methods never touch
// storage: they take a booking, check the guard and return the mutated copy. The
// service persists the result with a conditional update on the previous status.
package lifecycle

import (
	"slices"
	"strings"
	"time"

	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/shopspring/decimal"
)

const (
	checkInNotePrefix  = "Check-in: "
	checkOutNotePrefix = "Check-out: "
	roomNumberRule     = "required,alphanum,max=10"
)

var transitions = map[model.Status][]model.Status{
	model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
	model.StatusConfirmed: {model.StatusCheckedIn, model.StatusCancelled},
	model.StatusCheckedIn: {model.StatusCheckedOut, model.StatusCancelled},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to model.Status) bool {
	return slices.Contains(transitions[from], to)
}

// IsTerminal reports whether no transition leaves the status.
func IsTerminal(status model.Status) bool {
	return len(transitions[status]) == 0
}

// Patch is a partial booking edit. Nil fields are left untouched.
type Patch struct {
	GuestName       *string
	GuestEmail      *string
	GuestPhone      *string
	Nationality     *string
	GuestCount      *int
	RoomType        *roomModel.RoomType
	RoomNumber      *string
	CheckIn         *time.Time
	CheckOut        *time.Time
	TotalAmount     *decimal.Decimal
	BookingStatus   *model.Status
	PaymentStatus   *model.PaymentStatus
	SpecialRequests *string
	PurposeOfVisit  *string
}

type Controller struct {
	now func() time.Time
}

// New returns a controller reading the current time from now, or from the
// application clock when now is nil.
func New(now func() time.Time) *Controller {
	if now == nil {
		now = timezone.Now
	}

	return &Controller{now: now}
}

func (c *Controller) Confirm(booking model.Booking) (model.Booking, error) {
	if booking.BookingStatus != model.StatusPending {
		return booking, conflict(booking.BookingStatus, model.StatusConfirmed)
	}

	booking.BookingStatus = model.StatusConfirmed
	booking.ModifiedAt = c.now()

	return booking, nil
}

// CheckIn admits the guest. Arrival is allowed from the day before the booked check-in date.
func (c *Controller) CheckIn(booking model.Booking, notes, roomNumber string) (model.Booking, error) {
	if booking.BookingStatus != model.StatusConfirmed {
		return booking, conflict(booking.BookingStatus, model.StatusCheckedIn)
	}

	today := timezone.DateOf(c.now())
	earliest := timezone.DateOf(booking.CheckIn).AddDate(0, 0, -1)

	if today.Before(earliest) {
		return booking, failure.StateConflict("check-in opens on " + earliest.Format(constant.DateOnlyFormat)) // nolint:wrapcheck
	}

	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber != constant.Empty {
		if err := ValidateRoomNumber(roomNumber); err != nil {
			return booking, err
		}

		booking.RoomNumber = roomNumber
	}

	booking.BookingStatus = model.StatusCheckedIn
	booking.SpecialRequests = appendNote(booking.SpecialRequests, checkInNotePrefix, notes)
	booking.ModifiedAt = c.now()

	return booking, nil
}

func (c *Controller) CheckOut(booking model.Booking, notes string) (model.Booking, error) {
	if booking.BookingStatus != model.StatusCheckedIn {
		return booking, conflict(booking.BookingStatus, model.StatusCheckedOut)
	}

	booking.BookingStatus = model.StatusCheckedOut
	booking.SpecialRequests = appendNote(booking.SpecialRequests, checkOutNotePrefix, notes)
	booking.ModifiedAt = c.now()

	return booking, nil
}

func (c *Controller) Cancel(booking model.Booking, reason string) (model.Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == constant.Empty {
		return booking, failure.Validation("a cancellation reason is required") // nolint:wrapcheck
	}

	if !CanTransition(booking.BookingStatus, model.StatusCancelled) {
		return booking, conflict(booking.BookingStatus, model.StatusCancelled)
	}

	booking.BookingStatus = model.StatusCancelled
	booking.CancellationReason = reason
	booking.ModifiedAt = c.now()

	return booking, nil
}

// ApplyPatch copies the set fields of patch onto booking. Statuses may be set freely, as
// staff use this to correct records. Dates must stay ordered; the amount is not re-quoted.
func (c *Controller) ApplyPatch(original model.Booking, patch Patch) (model.Booking, error) {
	if err := patch.validate(); err != nil {
		return original, err
	}

	booking := original

	setIfPresent(&booking.GuestName, patch.GuestName)
	setIfPresent(&booking.GuestEmail, patch.GuestEmail)
	setIfPresent(&booking.GuestPhone, patch.GuestPhone)
	setIfPresent(&booking.Nationality, patch.Nationality)
	setIfPresent(&booking.GuestCount, patch.GuestCount)
	setIfPresent(&booking.RoomType, patch.RoomType)
	setIfPresent(&booking.RoomNumber, patch.RoomNumber)
	setIfPresent(&booking.TotalAmount, patch.TotalAmount)
	setIfPresent(&booking.PaymentStatus, patch.PaymentStatus)
	setIfPresent(&booking.SpecialRequests, patch.SpecialRequests)
	setIfPresent(&booking.PurposeOfVisit, patch.PurposeOfVisit)

	if patch.CheckIn != nil {
		booking.CheckIn = timezone.DateOf(*patch.CheckIn)
	}

	if patch.CheckOut != nil {
		booking.CheckOut = timezone.DateOf(*patch.CheckOut)
	}

	if booking.Nights() <= 0 {
		return original, failure.InvalidDateRange("check-out must be after check-in") // nolint:wrapcheck
	}

	if patch.BookingStatus != nil {
		booking.BookingStatus = *patch.BookingStatus

		if booking.BookingStatus != model.StatusCancelled {
			booking.CancellationReason = constant.Empty
		}
	}

	booking.ModifiedAt = c.now()

	return booking, nil
}

// ValidateRoomNumber checks the room or bed label format: 1 to 10 letters or digits.
func ValidateRoomNumber(number string) error {
	if err := validator.ValidateVar(number, roomNumberRule); err != nil {
		return failure.Validation("room number must be 1 to 10 letters or digits") // nolint:wrapcheck
	}

	return nil
}

func (p Patch) validate() error {
	if p.GuestName != nil && strings.TrimSpace(*p.GuestName) == constant.Empty {
		return failure.Validation("guest name cannot be empty") // nolint:wrapcheck
	}

	if p.GuestCount != nil && *p.GuestCount < 1 {
		return failure.Validation("guest count must be at least 1") // nolint:wrapcheck
	}

	if p.TotalAmount != nil && p.TotalAmount.IsNegative() {
		return failure.Validation("total amount cannot be negative") // nolint:wrapcheck
	}

	if p.RoomType != nil {
		if err := p.RoomType.Validate(); err != nil {
			return failure.Validation(err.Error()) // nolint:wrapcheck
		}
	}

	if p.RoomNumber != nil && *p.RoomNumber != constant.Empty {
		if err := ValidateRoomNumber(*p.RoomNumber); err != nil {
			return err
		}
	}

	if p.BookingStatus != nil {
		if err := p.BookingStatus.Validate(); err != nil {
			return failure.Validation(err.Error()) // nolint:wrapcheck
		}
	}

	if p.PaymentStatus != nil {
		if err := p.PaymentStatus.Validate(); err != nil {
			return failure.Validation(err.Error()) // nolint:wrapcheck
		}
	}

	return nil
}

func appendNote(existing, prefix, note string) string {
	note = strings.TrimSpace(note)
	if note == constant.Empty {
		return existing
	}

	if existing == constant.Empty {
		return prefix + note
	}

	return existing + "\n" + prefix + note
}

func setIfPresent[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}

func conflict(from, to model.Status) error {
	return failure.StateConflict("cannot move booking from " + string(from) + " to " + string(to)) // nolint:wrapcheck
}
