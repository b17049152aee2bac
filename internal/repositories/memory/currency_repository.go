package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
)

// CurrencyRepository is the in-memory currency table.
type CurrencyRepository struct {
	store *Store
}

var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

func (r *CurrencyRepository) FindCurrencyByID(_ context.Context, currencyID int64) (*domain.Currency, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	currency, ok := r.store.currencies[currencyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &currency, nil
}

func (r *CurrencyRepository) ListCurrencies(_ context.Context, filter domain.ListFilter) ([]domain.Currency, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]domain.Currency, 0)
	for _, id := range sortedIDs(r.store.currencies) {
		if c := r.store.currencies[id]; matchesSearch(c.Name, filter.Search) {
			matched = append(matched, c)
		}
	}
	return paginate(matched, filter), len(matched), nil
}

func (r *CurrencyRepository) SaveCurrency(_ context.Context, currency *domain.Currency) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextCurrencyID++
	now := r.store.now()
	currency.CurrencyID = r.store.nextCurrencyID
	currency.CreatedAt = now
	currency.UpdatedAt = now
	r.store.currencies[currency.CurrencyID] = *currency
	return nil
}

func (r *CurrencyRepository) UpdateCurrency(_ context.Context, currency *domain.Currency) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.currencies[currency.CurrencyID]
	if !ok {
		return apperrors.ErrNotFound
	}
	currency.CreatedAt = existing.CreatedAt
	currency.UpdatedAt = r.store.now()
	r.store.currencies[currency.CurrencyID] = *currency
	return nil
}

// DeleteCurrency refuses to remove a currency still referenced by a product
// or a price.
func (r *CurrencyRepository) DeleteCurrency(_ context.Context, currencyID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.currencies[currencyID]; !ok {
		return apperrors.ErrNotFound
	}
	for _, p := range r.store.products {
		if p.CurrencyID != nil && *p.CurrencyID == currencyID {
			return fmt.Errorf("currency %d referenced by product %d: %w", currencyID, p.ProductID, apperrors.ErrConflict)
		}
	}
	for _, pp := range r.store.prices {
		if pp.CurrencyID == currencyID {
			return fmt.Errorf("currency %d referenced by product price %d: %w", currencyID, pp.ProductPriceID, apperrors.ErrConflict)
		}
	}
	delete(r.store.currencies, currencyID)
	return nil
}
