package domain

import "strconv"

// SortOrder names one of the supported catalog orderings.
type SortOrder string

const (
	// SortPopular is the default: rating descending, ties broken by most
	// recently created. It is also the fallback for unrecognized sort values —
	// the API degrades silently rather than rejecting the request.
	SortPopular   SortOrder = "popular"
	SortRating    SortOrder = "rating"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
)

// ParseSortOrder maps a raw query value onto a SortOrder.
// Unknown values (including empty) resolve to SortPopular by design;
// callers must not upgrade this to an error.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortRating, SortPriceLow, SortPriceHigh:
		return SortOrder(s)
	}
	return SortPopular
}

const (
	defaultPage  = 1
	defaultLimit = 12
)

// ListParams carries the destination listing inputs from the HTTP layer to
// the repo layer. Page is 1-indexed.
//
// Category is kept as the raw request string: "all" and "" mean no category
// restriction, and an unrecognized value is passed through as an equality
// filter so it matches nothing instead of erroring.
type ListParams struct {
	Category string
	Query    string
	Page     int
	Limit    int
	Sort     SortOrder
}

// NewListParams builds ListParams from raw query values.
// Non-numeric page/limit fall back to the defaults (1 and 12); numeric values
// below 1 are clamped to 1. Malformed input is never an error here.
func NewListParams(category, query, page, limit, sort string) ListParams {
	p := ListParams{
		Category: category,
		Query:    query,
		Page:     defaultPage,
		Limit:    defaultLimit,
		Sort:     ParseSortOrder(sort),
	}
	if n, err := strconv.Atoi(page); err == nil {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil {
		p.Limit = n
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	return p
}

// FiltersAll reports whether the params place no category restriction.
func (p ListParams) FiltersAll() bool {
	return p.Category == "" || p.Category == "all"
}

// Skip returns the number of documents to skip for the current page.
func (p ListParams) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// DestinationPage is one page of catalog results.
// Total counts every document matching the filter, ignoring pagination.
// Page and Limit echo the post-clamping values back to the caller.
type DestinationPage struct {
	Items []Destination `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
