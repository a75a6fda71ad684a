package sdk

import (
	"net/url"
	"strconv"
)

// ListOptions carries the pagination and search parameters shared by every
// list endpoint.
type ListOptions struct {
	Page     int
	PageSize int
	Search   string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(o.PageSize))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}

// Page is one page of a listed resource.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
