package otel

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestToAttribute(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected attribute.KeyValue
	}{
		{name: "bool", value: true, expected: attribute.Bool("k", true)},
		{name: "string", value: "deluxe", expected: attribute.String("k", "deluxe")},
		{name: "int", value: 3, expected: attribute.Int("k", 3)},
		{name: "int64", value: int64(7), expected: attribute.Int64("k", 7)},
		{name: "float", value: 66.67, expected: attribute.Float64("k", 66.67)},
		{name: "strings", value: []string{"a", "b"}, expected: attribute.StringSlice("k", []string{"a", "b"})},
		{
			name:     "date",
			value:    time.Date(2024, 7, 1, 15, 0, 0, 0, time.UTC),
			expected: attribute.String("k", "2024-07-01"),
		},
		{name: "amount", value: decimal.RequireFromString("7150.50"), expected: attribute.String("k", "7150.5")},
		{name: "fallback", value: struct{ N int }{N: 2}, expected: attribute.String("k", "{2}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toAttribute("k", tt.value))
		})
	}
}
