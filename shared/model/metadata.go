package model

import (
	"time"

	"hotel/shared/constant"
)

// Metadata is the audit block every table carries. The staff name comes from
// the X-Staff-Name header, "system" for automated changes.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

func NewMetadata(now time.Time, user string) Metadata {
	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

// AuditFields is the column set stamped onto every partial update.
func AuditFields(now time.Time, user string) map[string]any {
	return map[string]any{
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}
}
