package model

import (
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "room_rates"
	EntityName = "rate"

	FieldRoomType          = "room_type"
	FieldBasePrice         = "base_price"
	FieldCurrency          = "currency"
	FieldSeasonMultiplier  = "season_multiplier"
	FieldWeekendMultiplier = "weekend_multiplier"
)

// Rate is the nightly price of a room type. Both multipliers are at least 1 and
// apply multiplicatively.
type Rate struct {
	RoomType          roomModel.RoomType `db:"room_type"`
	BasePrice         decimal.Decimal    `db:"base_price"`
	Currency          string             `db:"currency"`
	SeasonMultiplier  decimal.Decimal    `db:"season_multiplier"`
	WeekendMultiplier decimal.Decimal    `db:"weekend_multiplier"`
	model.Metadata
}
