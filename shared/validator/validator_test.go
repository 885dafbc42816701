package validator_test

import (
	"errors"
	"hotel/shared/validator"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type roomKind string

func (k roomKind) Validate() error {
	switch k {
	case "standard", "deluxe":
		return nil
	default:
		return errors.New("unknown room kind")
	}
}

type guestRequest struct {
	Name       string          `validate:"required" json:"name"`
	Email      string          `validate:"omitempty,email" json:"email"`
	Guests     int             `validate:"gte=1,lte=10" json:"guests"`
	Kind       roomKind        `validate:"required,enum" json:"kind"`
	Multiplier decimal.Decimal `validate:"dmin=1" json:"multiplier"`
}

func validGuestRequest() *guestRequest {
	return &guestRequest{
		Name:       "Ayesha Khan",
		Email:      "ayesha@example.com",
		Guests:     2,
		Kind:       "deluxe",
		Multiplier: decimal.RequireFromString("1.2"),
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *guestRequest)
		expectError bool
	}{
		{name: "valid request", mutate: func(*guestRequest) {}},
		{name: "missing name", mutate: func(r *guestRequest) { r.Name = "" }, expectError: true},
		{name: "invalid email", mutate: func(r *guestRequest) { r.Email = "not-an-email" }, expectError: true},
		{name: "empty email is allowed", mutate: func(r *guestRequest) { r.Email = "" }},
		{name: "too many guests", mutate: func(r *guestRequest) { r.Guests = 11 }, expectError: true},
		{name: "unknown enum value", mutate: func(r *guestRequest) { r.Kind = "penthouse" }, expectError: true},
		{name: "multiplier below minimum", mutate: func(r *guestRequest) { r.Multiplier = decimal.RequireFromString("0.9") }, expectError: true},
		{name: "multiplier at minimum", mutate: func(r *guestRequest) { r.Multiplier = decimal.NewFromInt(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validGuestRequest()
			tt.mutate(req)

			err := validator.ValidateStruct(req)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "required string", field: "deluxe", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "enum value", field: roomKind("standard"), tag: "enum"},
		{name: "bad enum value", field: roomKind("suite"), tag: "enum", expectError: true},
		{name: "enum tag on plain string", field: "standard", tag: "enum", expectError: true},
		{name: "oneof", field: "pending", tag: "oneof=pending confirmed"},
		{name: "bad oneof", field: "lost", tag: "oneof=pending confirmed", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name: "valid body",
			body: `{"name":"Ayesha Khan","guests":2,"kind":"standard","multiplier":"1.5"}`,
		},
		{
			name:        "invalid field",
			body:        `{"name":"Ayesha Khan","guests":0,"kind":"standard","multiplier":"1.5"}`,
			expectError: true,
		},
		{
			name:        "malformed body",
			body:        `{"name":}`,
			expectError: true,
		},
		{
			name:        "empty object",
			body:        `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data guestRequest

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	req := validGuestRequest()
	req.Name = ""

	err := validator.ValidateStruct(req)

	assert.EqualError(t, err, "Name is required")

	req = validGuestRequest()
	req.Multiplier = decimal.Zero

	err = validator.ValidateStruct(req)

	assert.EqualError(t, err, "Multiplier must be at least 1")
}

type imageUpload struct {
	Image multipart.FileHeader `validate:"mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func TestFileValidation(t *testing.T) {
	header := func(contentType string, size int64) multipart.FileHeader {
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", contentType)

		return multipart.FileHeader{Filename: "room.png", Header: h, Size: size}
	}

	tests := []struct {
		name        string
		file        multipart.FileHeader
		expectError bool
	}{
		{name: "png within size", file: header("image/png", 512*1024)},
		{name: "unsupported type", file: header("application/pdf", 1024), expectError: true},
		{name: "too large", file: header("image/jpeg", 2*1024*1024), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&imageUpload{Image: tt.file})

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationMessagesJoinViolations(t *testing.T) {
	req := validGuestRequest()
	req.Name = ""
	req.Multiplier = decimal.Zero

	err := validator.ValidateStruct(req)

	assert.EqualError(t, err, "Name is required; Multiplier must be at least 1")
}
