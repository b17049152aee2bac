package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Product is a sellable item with a base price and an optional cost breakdown.
// CurrencyID weakly references the product's default currency.
type Product struct {
	ProductID         int64            `json:"id"`
	Name              string           `json:"name"`
	Price             decimal.Decimal  `json:"price"`
	Description       *string          `json:"description"`
	CurrencyID        *int64           `json:"currency_id"`
	TaxCost           *decimal.Decimal `json:"tax_cost"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost"`
	AuditFields
}

// Validate checks the product invariants before persistence.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if nameTooLong(p.Name) {
		return fmt.Errorf("%w: product name must not exceed %d characters", apperrors.ErrValidation, MaxNameLength)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	if amountTooLarge(p.Price) {
		return fmt.Errorf("%w: price must be less than %s", apperrors.ErrValidation, MaxAmount)
	}
	if p.TaxCost != nil && p.TaxCost.IsNegative() {
		return fmt.Errorf("%w: tax cost must not be negative", apperrors.ErrValidation)
	}
	if p.TaxCost != nil && amountTooLarge(*p.TaxCost) {
		return fmt.Errorf("%w: tax cost must be less than %s", apperrors.ErrValidation, MaxAmount)
	}
	if p.ManufacturingCost != nil && p.ManufacturingCost.IsNegative() {
		return fmt.Errorf("%w: manufacturing cost must not be negative", apperrors.ErrValidation)
	}
	if p.ManufacturingCost != nil && amountTooLarge(*p.ManufacturingCost) {
		return fmt.Errorf("%w: manufacturing cost must be less than %s", apperrors.ErrValidation, MaxAmount)
	}
	return nil
}
