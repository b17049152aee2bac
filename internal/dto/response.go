package dto

import "github.com/shopspring/decimal"

func init() {
	// Prices and rates go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Response is the envelope shared by the catalog and registry endpoints.
type Response struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
	Meta    *PageMeta `json:"meta,omitempty"`
}

// ValidationErrorResponse reports field-level validation failures.
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// MessageResponse is the bare message body used by the auth endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// PageMeta describes the position of a page within a listing.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// ListParams defines query parameters accepted by list endpoints.
type ListParams struct {
	Search  string `form:"search"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1"`
}
