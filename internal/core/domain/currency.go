package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Currency is a named unit of account with an exchange rate relative to an
// implicit base unit.
type Currency struct {
	CurrencyID   int64           `json:"id"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	AuditFields
}

// Validate checks the currency invariants before persistence.
func (c Currency) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: currency name is required", apperrors.ErrValidation)
	}
	if nameTooLong(c.Name) {
		return fmt.Errorf("%w: currency name must not exceed %d characters", apperrors.ErrValidation, MaxNameLength)
	}
	if strings.TrimSpace(c.Symbol) == "" {
		return fmt.Errorf("%w: currency symbol is required", apperrors.ErrValidation)
	}
	if c.ExchangeRate.IsNegative() {
		return fmt.Errorf("%w: exchange rate must not be negative", apperrors.ErrValidation)
	}
	if amountTooLarge(c.ExchangeRate) {
		return fmt.Errorf("%w: exchange rate must be less than %s", apperrors.ErrValidation, MaxAmount)
	}
	return nil
}
