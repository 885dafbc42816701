package dto

import (
	"hotel/shared/constant"
	"hotel/shared/model"
	"hotel/shared/timezone"
)

// Metadata is the audit block of every response, timestamps in hotel time.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func NewMetadata(audit model.Metadata) Metadata {
	return Metadata{
		CreatedAt:  timezone.Format(audit.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(audit.ModifiedAt, constant.DateFormat),
		CreatedBy:  audit.CreatedBy,
		ModifiedBy: audit.ModifiedBy,
	}
}
