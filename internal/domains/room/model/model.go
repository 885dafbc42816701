package model

import (
	"fmt"
	"hotel/shared/model"
	"slices"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldNumber      = "number"
	FieldType        = "type"
	FieldCapacity    = "capacity"
	FieldFloor       = "floor"
	FieldStatus      = "status"
	FieldBasePrice   = "base_price"
	FieldCurrency    = "currency"
	FieldAmenities   = "amenities"
	FieldDescription = "description"
	FieldImage       = "image"
)

type RoomType string

const (
	RoomTypeDormitoryMale   RoomType = "dormitory_male"
	RoomTypeDormitoryFemale RoomType = "dormitory_female"
	RoomTypeBudgetSingle    RoomType = "budget_single"
	RoomTypeBudgetDouble    RoomType = "budget_double"
	RoomTypeStandard        RoomType = "standard"
	RoomTypeDeluxe          RoomType = "deluxe"
	RoomTypeFamily          RoomType = "family"
	RoomTypeExecutive       RoomType = "executive"
)

var RoomTypes = []RoomType{
	RoomTypeDormitoryMale,
	RoomTypeDormitoryFemale,
	RoomTypeBudgetSingle,
	RoomTypeBudgetDouble,
	RoomTypeStandard,
	RoomTypeDeluxe,
	RoomTypeFamily,
	RoomTypeExecutive,
}

func (t RoomType) Validate() error {
	if !slices.Contains(RoomTypes, t) {
		return fmt.Errorf("unknown room type %q", string(t))
	}

	return nil
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusOutOfOrder  Status = "out-of-order"
	StatusCleaning    Status = "cleaning"
)

var Statuses = []Status{
	StatusAvailable,
	StatusOccupied,
	StatusMaintenance,
	StatusOutOfOrder,
	StatusCleaning,
}

func (s Status) Validate() error {
	if !slices.Contains(Statuses, s) {
		return fmt.Errorf("unknown room status %q", string(s))
	}

	return nil
}

type Room struct {
	ID          string              `db:"id"`
	Number      string              `db:"number"`
	Type        RoomType            `db:"type"`
	Capacity    int                 `db:"capacity"`
	Floor       int                 `db:"floor"`
	Status      Status              `db:"status"`
	BasePrice   decimal.NullDecimal `db:"base_price"`
	Currency    string              `db:"currency"`
	Amenities   pq.StringArray      `db:"amenities"`
	Description string              `db:"description"`
	Image       string              `db:"image"`
	model.Metadata
}

// CanDelete reports whether the room may be removed from inventory.
func (r Room) CanDelete() bool {
	return r.Status != StatusOccupied
}
