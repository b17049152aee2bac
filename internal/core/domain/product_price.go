package domain

import (
	"fmt"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ProductPrice is a price quotation for a product in a specific currency.
// Rows are only ever inserted; there is no in-place update.
type ProductPrice struct {
	ProductPriceID int64           `json:"id"`
	ProductID      int64           `json:"product_id"`
	CurrencyID     int64           `json:"currency_id"`
	Price          decimal.Decimal `json:"price"`
	AuditFields
}

// Validate checks the price invariants before persistence.
func (p ProductPrice) Validate() error {
	if p.ProductID <= 0 {
		return fmt.Errorf("%w: product id is required", apperrors.ErrValidation)
	}
	if p.CurrencyID <= 0 {
		return fmt.Errorf("%w: currency id is required", apperrors.ErrValidation)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	if amountTooLarge(p.Price) {
		return fmt.Errorf("%w: price must be less than %s", apperrors.ErrValidation, MaxAmount)
	}
	return nil
}

// ProductPriceDetail is a price row joined with the records it references.
// Product is nil when the row was loaded for a product the caller already holds.
type ProductPriceDetail struct {
	ProductPrice
	Product  *Product `json:"product,omitempty"`
	Currency Currency `json:"currency"`
}
