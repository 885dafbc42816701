package dto

import (
	"strings"
	"time"

	"hotel/internal/domains/booking/lifecycle"
	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	CheckIn         string              `json:"check_in"         validate:"required,datetime=2006-01-02"`
	CheckOut        string              `json:"check_out"        validate:"required,datetime=2006-01-02"`
	GuestName       string              `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string              `json:"guest_email"      validate:"required,email,max=100"`
	GuestPhone      string              `json:"guest_phone"      validate:"omitempty,max=20"`
	Nationality     string              `json:"nationality"      validate:"omitempty,max=60"`
	GuestCount      int                 `json:"guest_count"      validate:"required,min=1,max=20"`
	RoomType        roomModel.RoomType  `json:"room_type"        validate:"required,enum"`
	RoomNumber      string              `json:"room_number"      validate:"omitempty,alphanum,max=10"`
	TotalAmount     *decimal.Decimal    `json:"total_amount"     validate:"omitempty,dmin=0"`
	Currency        string              `json:"currency"         validate:"omitempty,len=3"`
	BookingStatus   model.Status        `json:"booking_status"   validate:"omitempty,oneof=pending confirmed"`
	PaymentStatus   model.PaymentStatus `json:"payment_status"   validate:"omitempty,enum"`
	SpecialRequests string              `json:"special_requests" validate:"omitempty,max=1000"`
	PurposeOfVisit  string              `json:"purpose_of_visit" validate:"omitempty,max=200"`
}

// Dates parses the stay dates. Call after validation.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time) {
	checkIn, _ = timezone.ParseDate(c.CheckIn)
	checkOut, _ = timezone.ParseDate(c.CheckOut)

	return checkIn, checkOut
}

func (c *CreateBookingRequest) ToModel(user, reference string, total decimal.Decimal, currency string) model.Booking {
	checkIn, checkOut := c.Dates()

	status := model.StatusPending
	if c.BookingStatus != constant.Empty {
		status = c.BookingStatus
	}

	payment := model.PaymentPending
	if c.PaymentStatus != constant.Empty {
		payment = c.PaymentStatus
	}

	return model.Booking{
		ID:              uuid.NewString(),
		Reference:       reference,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestName:       strings.TrimSpace(c.GuestName),
		GuestEmail:      strings.TrimSpace(c.GuestEmail),
		GuestPhone:      c.GuestPhone,
		Nationality:     c.Nationality,
		GuestCount:      c.GuestCount,
		RoomType:        c.RoomType,
		RoomNumber:      c.RoomNumber,
		Currency:        currency,
		TotalAmount:     total,
		BookingStatus:   status,
		PaymentStatus:   payment,
		SpecialRequests: c.SpecialRequests,
		PurposeOfVisit:  c.PurposeOfVisit,
		Metadata:        gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateBookingRequest struct {
	GuestName       *string              `json:"guest_name"       validate:"omitempty,max=100"`
	GuestEmail      *string              `json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      *string              `json:"guest_phone"      validate:"omitempty,max=20"`
	Nationality     *string              `json:"nationality"      validate:"omitempty,max=60"`
	GuestCount      *int                 `json:"guest_count"      validate:"omitempty,min=1,max=20"`
	RoomType        *roomModel.RoomType  `json:"room_type"        validate:"omitempty,enum"`
	RoomNumber      *string              `json:"room_number"      validate:"omitempty,max=10"`
	CheckIn         *string              `json:"check_in"         validate:"omitempty,datetime=2006-01-02"`
	CheckOut        *string              `json:"check_out"        validate:"omitempty,datetime=2006-01-02"`
	TotalAmount     *decimal.Decimal     `json:"total_amount"     validate:"omitempty,dmin=0"`
	BookingStatus   *model.Status        `json:"booking_status"   validate:"omitempty,enum"`
	PaymentStatus   *model.PaymentStatus `json:"payment_status"   validate:"omitempty,enum"`
	SpecialRequests *string              `json:"special_requests" validate:"omitempty,max=1000"`
	PurposeOfVisit  *string              `json:"purpose_of_visit" validate:"omitempty,max=200"`
}

// ToPatch converts the request into a lifecycle patch. Call after validation.
func (u *UpdateBookingRequest) ToPatch() lifecycle.Patch {
	patch := lifecycle.Patch{
		GuestName:       u.GuestName,
		GuestEmail:      u.GuestEmail,
		GuestPhone:      u.GuestPhone,
		Nationality:     u.Nationality,
		GuestCount:      u.GuestCount,
		RoomType:        u.RoomType,
		RoomNumber:      u.RoomNumber,
		TotalAmount:     u.TotalAmount,
		BookingStatus:   u.BookingStatus,
		PaymentStatus:   u.PaymentStatus,
		SpecialRequests: u.SpecialRequests,
		PurposeOfVisit:  u.PurposeOfVisit,
	}

	if u.CheckIn != nil {
		checkIn, _ := timezone.ParseDate(*u.CheckIn)
		patch.CheckIn = &checkIn
	}

	if u.CheckOut != nil {
		checkOut, _ := timezone.ParseDate(*u.CheckOut)
		patch.CheckOut = &checkOut
	}

	return patch
}

type CheckInRequest struct {
	Notes      string `json:"notes"       validate:"omitempty,max=500"`
	RoomNumber string `json:"room_number" validate:"omitempty,max=10"`
}

type CheckOutRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type BookingResponse struct {
	ID                 string              `json:"id"`
	Reference          string              `json:"reference"`
	CheckIn            string              `json:"check_in"`
	CheckOut           string              `json:"check_out"`
	Nights             int                 `json:"nights"`
	GuestName          string              `json:"guest_name"`
	GuestEmail         string              `json:"guest_email"`
	GuestPhone         string              `json:"guest_phone"`
	Nationality        string              `json:"nationality"`
	GuestCount         int                 `json:"guest_count"`
	RoomType           roomModel.RoomType  `json:"room_type"`
	RoomNumber         string              `json:"room_number,omitempty"`
	Currency           string              `json:"currency"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
	BookingStatus      model.Status        `json:"booking_status"`
	PaymentStatus      model.PaymentStatus `json:"payment_status"`
	SpecialRequests    string              `json:"special_requests"`
	PurposeOfVisit     string              `json:"purpose_of_visit"`
	CancellationReason string              `json:"cancellation_reason,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Reference = model.Reference
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Nights = model.Nights()
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Nationality = model.Nationality
	r.GuestCount = model.GuestCount
	r.RoomType = model.RoomType
	r.RoomNumber = model.RoomNumber
	r.Currency = model.Currency
	r.TotalAmount = model.TotalAmount
	r.BookingStatus = model.BookingStatus
	r.PaymentStatus = model.PaymentStatus
	r.SpecialRequests = model.SpecialRequests
	r.PurposeOfVisit = model.PurposeOfVisit
	r.CancellationReason = model.CancellationReason
	r.Metadata = gDto.NewMetadata(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
