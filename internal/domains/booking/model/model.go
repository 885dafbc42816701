package model

import (
	"fmt"
	"slices"
	"time"

	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	ReferenceSequence = "room_booking_reference_seq"

	FieldID                 = "id"
	FieldReference          = "reference"
	FieldCheckIn            = "check_in"
	FieldCheckOut           = "check_out"
	FieldGuestName          = "guest_name"
	FieldGuestEmail         = "guest_email"
	FieldGuestPhone         = "guest_phone"
	FieldNationality        = "nationality"
	FieldGuestCount         = "guest_count"
	FieldRoomType           = "room_type"
	FieldRoomNumber         = "room_number"
	FieldCurrency           = "currency"
	FieldTotalAmount        = "total_amount"
	FieldBookingStatus      = "booking_status"
	FieldPaymentStatus      = "payment_status"
	FieldSpecialRequests    = "special_requests"
	FieldPurposeOfVisit     = "purpose_of_visit"
	FieldCancellationReason = "cancellation_reason"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}

func (s Status) Validate() error {
	if !slices.Contains(Statuses, s) {
		return fmt.Errorf("unknown booking status %q", string(s))
	}

	return nil
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPaid,
	PaymentFailed,
	PaymentRefunded,
}

func (p PaymentStatus) Validate() error {
	if !slices.Contains(PaymentStatuses, p) {
		return fmt.Errorf("unknown payment status %q", string(p))
	}

	return nil
}

type Booking struct {
	ID                 string             `db:"id"`
	Reference          string             `db:"reference"`
	CheckIn            time.Time          `db:"check_in"`
	CheckOut           time.Time          `db:"check_out"`
	GuestName          string             `db:"guest_name"`
	GuestEmail         string             `db:"guest_email"`
	GuestPhone         string             `db:"guest_phone"`
	Nationality        string             `db:"nationality"`
	GuestCount         int                `db:"guest_count"`
	RoomType           roomModel.RoomType `db:"room_type"`
	RoomNumber         string             `db:"room_number"`
	Currency           string             `db:"currency"`
	TotalAmount        decimal.Decimal    `db:"total_amount"`
	BookingStatus      Status             `db:"booking_status"`
	PaymentStatus      PaymentStatus      `db:"payment_status"`
	SpecialRequests    string             `db:"special_requests"`
	PurposeOfVisit     string             `db:"purpose_of_visit"`
	CancellationReason string             `db:"cancellation_reason"`
	model.Metadata
}

// Nights is the number of calendar nights between check-in and check-out.
func (b Booking) Nights() int {
	return timezone.DaysBetween(b.CheckIn, b.CheckOut)
}

func (b Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentPaid
}

func (b Booking) IsCancelled() bool {
	return b.BookingStatus == StatusCancelled
}

// FormatReference renders a booking reference such as HKH-000042.
func FormatReference(prefix string, sequence int64) string {
	return fmt.Sprintf("%s-%06d", prefix, sequence)
}
