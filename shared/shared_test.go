package shared_test

import (
	"context"
	"errors"
	"hotel/shared"
	"hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "invalid string returns nil", input: "yes please", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}

			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	got, err := shared.ConvertStringToInt(" 12 ")
	if err != nil || got != 12 {
		t.Errorf("expected 12, got %d (%v)", got, err)
	}

	if _, err := shared.ConvertStringToInt("twelve"); err == nil {
		t.Error("expected error for non numeric input")
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		GuestName  string  `db:"guest_name"`
		GuestPhone *string `db:"guest_phone"`
		RoomNumber string  `db:"room_number"`
		Ignored    string
	}

	phone := ""
	result := shared.TransformFields(patch{GuestName: "Ayesha Khan", GuestPhone: &phone, Ignored: "x"}, "front-desk")

	if result["guest_name"] != "Ayesha Khan" {
		t.Errorf("expected guest_name to be set, got %v", result["guest_name"])
	}

	if _, ok := result["guest_phone"]; !ok {
		t.Error("expected pointer field to be kept even when it points to a zero value")
	}

	if _, ok := result["room_number"]; ok {
		t.Error("expected zero value field to be skipped")
	}

	if result[constant.FieldModifiedBy] != "front-desk" {
		t.Errorf("expected modified_by to be front-desk, got %v", result[constant.FieldModifiedBy])
	}

	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}

	if len(result) != 4 {
		t.Errorf("expected 4 fields, got %d", len(result))
	}
}

func TestFilterByID(t *testing.T) {
	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "123",
				Operator: dto.FilterOperatorEq,
				Table:    "room_bookings",
			},
		},
	}

	result := shared.FilterByID("123", "id", "room_bookings")
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking:get", "abc"); got != "booking:get:abc" {
		t.Errorf("unexpected key %s", got)
	}

	if got := shared.BuildCacheKey("limiter"); got != "limiter" {
		t.Errorf("unexpected key %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{dto.Filter{Field: "booking_status", Operator: dto.FilterOperatorEq, Value: "confirmed"}},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if first != second {
		t.Errorf("expected stable key, got %s and %s", first, second)
	}

	if !strings.HasPrefix(first, "booking:gets:") {
		t.Errorf("expected prefix to be kept, got %s", first)
	}

	params.Page = 2
	if shared.BuildCacheKeyWithQuery("booking:gets", params, filter) == first {
		t.Error("expected different page to produce a different key")
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "booking:count*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), mockCache, "booking:gets")
	shared.InvalidateCaches(context.Background(), mockCache, "booking:count")
}

func boolPtr(b bool) *bool {
	return &b
}
