package dto

import (
	"mime/multipart"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Number      string           `json:"number"      validate:"required,alphanum,max=10"`
	Type        model.RoomType   `json:"type"        validate:"required,enum"`
	Capacity    int              `json:"capacity"    validate:"required,min=1,max=10"`
	Floor       int              `json:"floor"       validate:"required,min=1,max=20"`
	Status      model.Status     `json:"status"      validate:"omitempty,enum"`
	BasePrice   *decimal.Decimal `json:"base_price"  validate:"omitempty,dmin=0"`
	Currency    string           `json:"currency"    validate:"omitempty,len=3"`
	Amenities   []string         `json:"amenities"   validate:"required,min=1,dive,required,max=50"`
	Description string           `json:"description" validate:"omitempty,max=1000"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	basePrice := decimal.NullDecimal{}
	if c.BasePrice != nil {
		basePrice = decimal.NewNullDecimal(*c.BasePrice)
	}

	return model.Room{
		ID:          uuid.NewString(),
		Number:      c.Number,
		Type:        c.Type,
		Capacity:    c.Capacity,
		Floor:       c.Floor,
		Status:      status,
		BasePrice:   basePrice,
		Currency:    c.Currency,
		Amenities:   pq.StringArray(c.Amenities),
		Description: c.Description,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateRoomRequest struct {
	Number      string           `db:"number"      json:"number"      validate:"omitempty,alphanum,max=10"`
	Type        model.RoomType   `db:"type"        json:"type"        validate:"omitempty,enum"`
	Capacity    int              `db:"capacity"    json:"capacity"    validate:"omitempty,min=1,max=10"`
	Floor       int              `db:"floor"       json:"floor"       validate:"omitempty,min=1,max=20"`
	Status      model.Status     `db:"status"      json:"status"      validate:"omitempty,enum"`
	BasePrice   *decimal.Decimal `db:"base_price"  json:"base_price"  validate:"omitempty,dmin=0"`
	Currency    string           `db:"currency"    json:"currency"    validate:"omitempty,len=3"`
	Amenities   pq.StringArray   `db:"amenities"   json:"amenities"   validate:"omitempty,min=1,dive,required,max=50"`
	Description *string          `db:"description" json:"description" validate:"omitempty,max=1000"`
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `validate:"-"`
}

type RoomResponse struct {
	ID          string           `json:"id"`
	Number      string           `json:"number"`
	Type        model.RoomType   `json:"type"`
	Capacity    int              `json:"capacity"`
	Floor       int              `json:"floor"`
	Status      model.Status     `json:"status"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
	Currency    string           `json:"currency,omitempty"`
	Amenities   []string         `json:"amenities"`
	Description string           `json:"description"`
	Image       string           `json:"image,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Capacity = model.Capacity
	r.Floor = model.Floor
	r.Status = model.Status
	r.Currency = model.Currency
	r.Amenities = model.Amenities
	r.Description = model.Description
	r.Image = model.Image
	r.Metadata = gDto.NewMetadata(model.Metadata)

	if model.BasePrice.Valid {
		price := model.BasePrice.Decimal
		r.BasePrice = &price
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
