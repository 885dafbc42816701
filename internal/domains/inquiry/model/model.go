package model

import (
	"fmt"
	"slices"
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldSubject   = "subject"
	FieldMessage   = "message"
	FieldStatus    = "status"
	FieldReply     = "reply"
	FieldRepliedAt = "replied_at"
)

type Status string

const (
	StatusNew      Status = "new"
	StatusReplied  Status = "replied"
	StatusResolved Status = "resolved"
)

// Statuses is ordered; an inquiry only moves towards the end of the list.
var Statuses = []Status{
	StatusNew,
	StatusReplied,
	StatusResolved,
}

func (s Status) Validate() error {
	if !slices.Contains(Statuses, s) {
		return fmt.Errorf("unknown inquiry status %q", string(s))
	}

	return nil
}

func (s Status) rank() int {
	return slices.Index(Statuses, s)
}

// CanAdvanceTo reports whether next is strictly further along than s.
func (s Status) CanAdvanceTo(next Status) bool {
	return next.rank() > s.rank() && s.rank() >= 0
}

// Before returns the statuses an inquiry may be in to move to next.
func (s Status) Before() []Status {
	if s.rank() <= 0 {
		return nil
	}

	return slices.Clone(Statuses[:s.rank()])
}

// Repliable lists the statuses from which a reply may be (re)sent.
var Repliable = []Status{StatusNew, StatusReplied}

type Inquiry struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Subject   string     `db:"subject"`
	Message   string     `db:"message"`
	Status    Status     `db:"status"`
	Reply     string     `db:"reply"`
	RepliedAt *time.Time `db:"replied_at"`
	model.Metadata
}
