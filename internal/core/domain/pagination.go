package domain

import "math"

// Paging defaults for list operations.
const (
	DefaultPerPage = 15
	MaxPerPage     = 100

	// MaxPage keeps (Page-1)*PerPage within int for any PerPage <= MaxPerPage.
	MaxPage = math.MaxInt / MaxPerPage
)

// ListFilter narrows a list query. Search is a case-insensitive substring match on name.
type ListFilter struct {
	Search  string
	Page    int
	PerPage int
}

// Normalize applies paging defaults and bounds.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	return f
}

// Offset returns the number of rows to skip for the current page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// Page is one page of an offset-paged listing.
type Page[T any] struct {
	Items   []T
	Total   int
	Page    int
	PerPage int
}

// LastPage returns the index of the final page, at least 1.
func (p Page[T]) LastPage() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}
