package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorEqFold    = "eq_fold"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// comparisons render "column <op> :arg" for the binary operators.
var comparisons = map[string]string{
	FilterOperatorEq:        "%s = :%s",
	FilterOperatorNotEq:     "%s != :%s",
	FilterOperatorLessEq:    "%s <= :%s",
	FilterOperatorGreaterEq: "%s >= :%s",
	FilterOperatorEqFold:    "LOWER(%s) = LOWER(:%s)",
}

// Filter is one predicate of a WHERE clause bound through sqlx named args.
// ArgName disambiguates two predicates on the same column, e.g. the two ends of
// a stay window.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq eq_fold is_null is_not_null"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) arg() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause renders the predicate. Unknown operators render nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column, arg := f.column(), f.arg()

	if format, ok := comparisons[f.Operator]; ok {
		args[arg] = f.Value

		return fmt.Sprintf(format, column, arg), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[arg] = "%" + fmt.Sprint(f.Value) + "%"

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, arg), args
	case FilterOperatorIn:
		return f.inClause(column, arg, args)
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	}

	return "", args
}

// inClause expands a slice value into one named arg per element. An empty slice
// matches nothing.
func (f *Filter) inClause(column, arg string, args map[string]any) (string, map[string]any) {
	val := reflect.ValueOf(f.Value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		args[arg] = f.Value

		return fmt.Sprintf("%s IN (:%s)", column, arg), args
	}

	if val.Len() == 0 {
		return "FALSE", args
	}

	named := make([]string, val.Len())

	for idx := range val.Len() {
		name := fmt.Sprintf("%s_%d", arg, idx)
		args[name] = val.Index(idx).Interface()
		named[idx] = ":" + name
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
}

// FilterGroup joins Filters and nested FilterGroups with one operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch node := item.(type) {
		case Filter:
			where, arg = node.GetWhereClause()
		case FilterGroup:
			where, arg = node.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return "(" + strings.Join(clauses, " "+f.Operator+" ") + ")", args
}
