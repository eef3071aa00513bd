package helper_util

import (
	"net/url"
	"strconv"
)

// ListParams carries the query parameters shared by every list endpoint.
type ListParams struct {
	Page   int
	Limit  int
	Query  string
	Status string
}

// Encode renders the parameters as a query-string suffix, or "" when empty.
func (p ListParams) Encode() string {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Query != "" {
		values.Set("q", p.Query)
	}
	if p.Status != "" {
		values.Set("status", p.Status)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
