package dto

import (
	"time"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Name         string           `json:"name" binding:"required,max=255"`
	Symbol       string           `json:"symbol" binding:"required"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate" binding:"required,min=0"`
}

// UpdateCurrencyRequest is a partial patch; nil fields are left unchanged.
type UpdateCurrencyRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Symbol       *string          `json:"symbol" binding:"omitempty,min=1"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate" binding:"omitempty,min=0"`
}

// HasChanges reports whether at least one updatable field is present.
func (r UpdateCurrencyRequest) HasChanges() bool {
	return r.Name != nil || r.Symbol != nil || r.ExchangeRate != nil
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:           curr.CurrencyID,
		Name:         curr.Name,
		Symbol:       curr.Symbol,
		ExchangeRate: curr.ExchangeRate,
		CreatedAt:    curr.CreatedAt,
		UpdatedAt:    curr.UpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
