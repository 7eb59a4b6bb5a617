package fiken

import (
	"net/url"
	"strconv"
	"strings"
)

// ListOptions represents query parameters for list endpoints. Page numbers
// are zero-indexed, matching the Fiken-Api-Page response header.
type ListOptions struct {
	// Page is the zero-indexed page to fetch.
	Page int
	// PageSize is the number of items per page (API default 25, max 100).
	PageSize int
	// SortBy orders results, e.g. "createdDate desc".
	SortBy string
	// Filters holds endpoint-specific query parameters such as "date",
	// "lastModified" or "customerId". Multiple values are joined by comma.
	Filters map[string][]string
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the zero-indexed page.
func (o *ListOptions) WithPage(page int) *ListOptions {
	o.Page = page
	return o
}

// WithPageSize sets the page size.
func (o *ListOptions) WithPageSize(size int) *ListOptions {
	o.PageSize = size
	return o
}

// WithSortBy sets the sort expression.
func (o *ListOptions) WithSortBy(sortBy string) *ListOptions {
	o.SortBy = sortBy
	return o
}

// WithFilter adds values for an endpoint-specific query parameter.
func (o *ListOptions) WithFilter(key string, values ...string) *ListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string][]string)
	}

	o.Filters[key] = append(o.Filters[key], values...)

	return o
}

// ToValues converts the options to URL query values.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(o.PageSize))
	}

	if o.SortBy != "" {
		values.Set("sortBy", o.SortBy)
	}

	for key, vals := range o.Filters {
		if len(vals) > 0 {
			values.Set(key, strings.Join(vals, ","))
		}
	}

	return values
}

// clone returns a copy so iterators can advance the page without mutating
// caller-owned options.
func (o *ListOptions) clone() *ListOptions {
	if o == nil {
		return NewListOptions()
	}

	copied := &ListOptions{
		Page:     o.Page,
		PageSize: o.PageSize,
		SortBy:   o.SortBy,
		Filters:  make(map[string][]string, len(o.Filters)),
	}
	for key, vals := range o.Filters {
		copied.Filters[key] = append([]string(nil), vals...)
	}

	return copied
}
