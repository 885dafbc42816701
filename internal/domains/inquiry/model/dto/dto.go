package dto

import (
	"strings"

	"hotel/internal/domains/inquiry/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateInquiryRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (c *CreateInquiryRequest) ToModel(user string) model.Inquiry {
	return model.Inquiry{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(c.Name),
		Email:    strings.TrimSpace(c.Email),
		Subject:  strings.TrimSpace(c.Subject),
		Message:  c.Message,
		Status:   model.StatusNew,
		Metadata: gModel.NewMetadata(timezone.Now(), user),
	}
}

type ReplyRequest struct {
	Reply string `json:"reply" validate:"required,max=5000"`
}

type UpdateStatusRequest struct {
	Status model.Status `json:"status" validate:"required,enum"`
}

type InquiryResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Subject   string       `json:"subject"`
	Message   string       `json:"message"`
	Status    model.Status `json:"status"`
	Reply     string       `json:"reply,omitempty"`
	RepliedAt *string      `json:"replied_at,omitempty"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(model model.Inquiry) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Subject = model.Subject
	r.Message = model.Message
	r.Status = model.Status
	r.Reply = model.Reply
	r.RepliedAt = nil

	if model.RepliedAt != nil {
		repliedAt := timezone.Format(*model.RepliedAt, constant.DateFormat)
		r.RepliedAt = &repliedAt
	}

	r.Metadata = gDto.NewMetadata(model.Metadata)
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, mod := range models {
		r.Inquiries[i].FromModel(mod)
	}
}
