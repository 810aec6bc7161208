package domain

import "math"

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

// Pagination carries page/per_page values from the HTTP layer to the repository.
// Page is 1-indexed. Use NewPagination so out-of-range input falls back to
// defaults instead of producing negative offsets.
type Pagination struct {
	Page    int
	PerPage int
}

// NewPagination builds a Pagination from optional HTTP query params.
// Nil or out-of-range pointers fall back to page=1, per_page=10.
// per_page is capped at 100 to prevent runaway queries.
func NewPagination(page, perPage *int) Pagination {
	p := Pagination{Page: defaultPage, PerPage: defaultPerPage}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if perPage != nil && *perPage >= 1 {
		p.PerPage = *perPage
		if p.PerPage > maxPerPage {
			p.PerPage = maxPerPage
		}
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Limit returns the row limit for a SQL LIMIT clause.
func (p Pagination) Limit() int {
	return p.PerPage
}

// PaginatedResult is one page of results plus the totals needed by clients
// to render pagination controls.
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int64 `json:"total_pages"`
}

// NewPaginatedResult assembles a PaginatedResult. Any non-zero remainder in
// total/per_page rounds the page count up.
func NewPaginatedResult[T any](data []T, total int64, p Pagination) PaginatedResult[T] {
	return PaginatedResult[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: int64(math.Ceil(float64(total) / float64(p.PerPage))),
	}
}
