package engine

import (
	"fmt"
	"maps"

	roomModel "hotel/internal/domains/room/model"

	"github.com/shopspring/decimal"
)

// DefaultPrices is the nightly price used when a room type has no rate entry.
// Fallback prices carry no multipliers.
type DefaultPrices map[roomModel.RoomType]decimal.Decimal

// BuiltinDefaultPrices returns the stock fallback table, in the hotel currency.
func BuiltinDefaultPrices() DefaultPrices {
	return DefaultPrices{
		roomModel.RoomTypeDormitoryMale:   decimal.NewFromInt(1500),
		roomModel.RoomTypeDormitoryFemale: decimal.NewFromInt(1500),
		roomModel.RoomTypeBudgetSingle:    decimal.NewFromInt(3000),
		roomModel.RoomTypeBudgetDouble:    decimal.NewFromInt(4500),
		roomModel.RoomTypeStandard:        decimal.NewFromInt(6000),
		roomModel.RoomTypeDeluxe:          decimal.NewFromInt(9000),
		roomModel.RoomTypeFamily:          decimal.NewFromInt(12000),
		roomModel.RoomTypeExecutive:       decimal.NewFromInt(15000),
	}
}

// WithOverrides returns a copy of d where every entry of overrides (room type to
// decimal string) replaces or adds a price.
func (d DefaultPrices) WithOverrides(overrides map[string]string) (DefaultPrices, error) {
	merged := maps.Clone(d)
	if merged == nil {
		merged = DefaultPrices{}
	}

	for key, value := range overrides {
		roomType := roomModel.RoomType(key)
		if err := roomType.Validate(); err != nil {
			return nil, fmt.Errorf("default price override: %w", err)
		}

		price, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("default price override for %s: %w", key, err)
		}

		if price.IsNegative() {
			return nil, fmt.Errorf("default price override for %s must not be negative", key)
		}

		merged[roomType] = price
	}

	return merged, nil
}
