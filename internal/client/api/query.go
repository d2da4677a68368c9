package api

import (
	"fmt"
	"net/url"
)

// Filter is one column condition in a select query, rendered in the
// backend's "column=op.value" query-string form.
type Filter struct {
	Column string
	Op     string
	Value  string
}

// Eq matches rows where the column equals value.
func Eq(column, value string) Filter {
	return Filter{Column: column, Op: "eq", Value: value}
}

// Gte matches rows where the column is greater than or equal to value.
func Gte(column, value string) Filter {
	return Filter{Column: column, Op: "gte", Value: value}
}

// Lte matches rows where the column is less than or equal to value.
func Lte(column, value string) Filter {
	return Filter{Column: column, Op: "lte", Value: value}
}

// Query describes a filtered, ordered select against one table.
type Query struct {
	Order   string
	Filters []Filter
	Limit   int
}

// Encode renders the query as URL parameters.
func (q Query) Encode() string {
	params := url.Values{}
	for _, f := range q.Filters {
		params.Add(f.Column, f.Op+"."+f.Value)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	if q.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", q.Limit))
	}
	return params.Encode()
}
