package repositories

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its identifier.
	// It returns apperrors.ErrNotFound when the currency does not exist.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves a page of currencies matching the filter, plus the total match count.
	ListCurrencies(ctx context.Context, filter domain.ListFilter) ([]domain.Currency, int, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency and fills in its generated ID and timestamps.
	SaveCurrency(ctx context.Context, currency *domain.Currency) error

	// UpdateCurrency overwrites an existing currency's mutable fields.
	UpdateCurrency(ctx context.Context, currency *domain.Currency) error

	// DeleteCurrency removes a currency. It returns apperrors.ErrConflict while
	// products or prices still reference it.
	DeleteCurrency(ctx context.Context, currencyID int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
