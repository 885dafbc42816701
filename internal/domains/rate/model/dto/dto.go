package dto

import (
	"hotel/internal/domains/rate/model"
	roomModel "hotel/internal/domains/room/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type RateRequest struct {
	RoomType          roomModel.RoomType `json:"room_type"          validate:"required,enum"`
	BasePrice         decimal.Decimal    `json:"base_price"         validate:"dmin=0"`
	Currency          string             `json:"currency"           validate:"omitempty,len=3"`
	SeasonMultiplier  *decimal.Decimal   `json:"season_multiplier"  validate:"omitempty,dmin=1"`
	WeekendMultiplier *decimal.Decimal   `json:"weekend_multiplier" validate:"omitempty,dmin=1"`
}

// ReplaceRatesRequest carries the complete rate table. Room types are unique.
type ReplaceRatesRequest struct {
	Rates []RateRequest `json:"rates" validate:"required,min=1,unique=RoomType,dive"`
}

func (r *ReplaceRatesRequest) ToModels(user, defaultCurrency string) []model.Rate {
	now := timezone.Now()
	rates := make([]model.Rate, len(r.Rates))

	for i, req := range r.Rates {
		currency := req.Currency
		if currency == "" {
			currency = defaultCurrency
		}

		rates[i] = model.Rate{
			RoomType:          req.RoomType,
			BasePrice:         req.BasePrice,
			Currency:          currency,
			SeasonMultiplier:  multiplierOrOne(req.SeasonMultiplier),
			WeekendMultiplier: multiplierOrOne(req.WeekendMultiplier),
			Metadata:          gModel.NewMetadata(now, user),
		}
	}

	return rates
}

func multiplierOrOne(value *decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.NewFromInt(1)
	}

	return *value
}

type RateResponse struct {
	RoomType          roomModel.RoomType `json:"room_type"`
	BasePrice         decimal.Decimal    `json:"base_price"`
	Currency          string             `json:"currency"`
	SeasonMultiplier  decimal.Decimal    `json:"season_multiplier"`
	WeekendMultiplier decimal.Decimal    `json:"weekend_multiplier"`
	gDto.Metadata
}

func (r *RateResponse) FromModel(model model.Rate) {
	r.RoomType = model.RoomType
	r.BasePrice = model.BasePrice
	r.Currency = model.Currency
	r.SeasonMultiplier = model.SeasonMultiplier
	r.WeekendMultiplier = model.WeekendMultiplier
	r.Metadata = gDto.NewMetadata(model.Metadata)
}

type GetRatesResponse struct {
	Rates []RateResponse `json:"rates"`
}

func (r *GetRatesResponse) FromModels(models []model.Rate) {
	r.Rates = make([]RateResponse, len(models))
	for i, mod := range models {
		r.Rates[i].FromModel(mod)
	}
}
