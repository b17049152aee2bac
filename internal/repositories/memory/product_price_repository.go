package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
)

// ProductPriceRepository is the in-memory product_prices table.
type ProductPriceRepository struct {
	store *Store
}

var _ portsrepo.ProductPriceRepositoryFacade = (*ProductPriceRepository)(nil)

// SaveProductPrice checks the product and currency under the write lock, so
// the insert cannot interleave with a product delete.
func (r *ProductPriceRepository) SaveProductPrice(_ context.Context, price *domain.ProductPrice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[price.ProductID]; !ok {
		return apperrors.ErrNotFound
	}
	if _, ok := r.store.currencies[price.CurrencyID]; !ok {
		return fmt.Errorf("currency %d does not exist: %w", price.CurrencyID, apperrors.ErrConflict)
	}

	r.store.nextPriceID++
	now := r.store.now()
	price.ProductPriceID = r.store.nextPriceID
	price.CreatedAt = now
	price.UpdatedAt = now
	r.store.prices[price.ProductPriceID] = *price
	return nil
}

func (r *ProductPriceRepository) ListPricesByProductID(_ context.Context, productID int64) ([]domain.ProductPriceDetail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	details := make([]domain.ProductPriceDetail, 0)
	for _, id := range sortedIDs(r.store.prices) {
		pp := r.store.prices[id]
		if pp.ProductID != productID {
			continue
		}
		details = append(details, domain.ProductPriceDetail{
			ProductPrice: pp,
			Currency:     r.store.currencies[pp.CurrencyID],
		})
	}
	return details, nil
}
