package dto

import "github.com/SscSPs/product_pricing_app/internal/core/domain"

// ToListFilter converts query parameters into a normalized domain filter.
func (p ListParams) ToListFilter() domain.ListFilter {
	return domain.ListFilter{
		Search:  p.Search,
		Page:    p.Page,
		PerPage: p.PerPage,
	}.Normalize()
}

// ToPageMeta builds pagination metadata from a domain page.
func ToPageMeta[T any](page *domain.Page[T]) *PageMeta {
	return &PageMeta{
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
		Total:       page.Total,
		LastPage:    page.LastPage(),
	}
}
