package model

import (
	"time"

	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
)

// InRangeFilter selects bookings whose check-in or check-out falls inside [from, to],
// or that span the whole range. Reports depend on this exact rule, so it is not a
// plain overlap test.
func InRangeFilter(from, to time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []any{
					gDto.Filter{ArgName: "check_in_from", Field: FieldCheckIn, Operator: gDto.FilterOperatorGreaterEq, Value: from, Table: TableName},
					gDto.Filter{ArgName: "check_in_to", Field: FieldCheckIn, Operator: gDto.FilterOperatorLessEq, Value: to, Table: TableName},
				},
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []any{
					gDto.Filter{ArgName: "check_out_from", Field: FieldCheckOut, Operator: gDto.FilterOperatorGreaterEq, Value: from, Table: TableName},
					gDto.Filter{ArgName: "check_out_to", Field: FieldCheckOut, Operator: gDto.FilterOperatorLessEq, Value: to, Table: TableName},
				},
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []any{
					gDto.Filter{ArgName: "span_from", Field: FieldCheckIn, Operator: gDto.FilterOperatorLessEq, Value: from, Table: TableName},
					gDto.Filter{ArgName: "span_to", Field: FieldCheckOut, Operator: gDto.FilterOperatorGreaterEq, Value: to, Table: TableName},
				},
			},
		},
	}
}

// InRange is the in-memory form of InRangeFilter.
func (b Booking) InRange(period gDto.DateRange) bool {
	return period.Contains(b.CheckIn) ||
		period.Contains(b.CheckOut) ||
		(!timezone.DateOf(b.CheckIn).After(period.From) && !timezone.DateOf(b.CheckOut).Before(period.To))
}
