package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
)

// ProductRepository is the in-memory product table.
type ProductRepository struct {
	store *Store
}

var _ portsrepo.ProductRepositoryFacade = (*ProductRepository)(nil)

func (r *ProductRepository) FindProductByID(_ context.Context, productID int64) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	product, ok := r.store.products[productID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	product = cloneProduct(product)
	return &product, nil
}

func (r *ProductRepository) ListProducts(_ context.Context, filter domain.ListFilter) ([]domain.Product, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]domain.Product, 0)
	for _, id := range sortedIDs(r.store.products) {
		if p := r.store.products[id]; matchesSearch(p.Name, filter.Search) {
			matched = append(matched, cloneProduct(p))
		}
	}
	return paginate(matched, filter), len(matched), nil
}

func (r *ProductRepository) SaveProduct(_ context.Context, product *domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if product.CurrencyID != nil {
		if _, ok := r.store.currencies[*product.CurrencyID]; !ok {
			return fmt.Errorf("currency %d does not exist: %w", *product.CurrencyID, apperrors.ErrConflict)
		}
	}

	r.store.nextProductID++
	now := r.store.now()
	product.ProductID = r.store.nextProductID
	product.CreatedAt = now
	product.UpdatedAt = now
	r.store.products[product.ProductID] = cloneProduct(*product)
	return nil
}

// UpdateProduct overwrites name, price and description only.
func (r *ProductRepository) UpdateProduct(_ context.Context, product *domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.products[product.ProductID]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.Name = product.Name
	existing.Price = product.Price
	existing.Description = cloneString(product.Description)
	existing.UpdatedAt = r.store.now()
	r.store.products[existing.ProductID] = existing
	product.UpdatedAt = existing.UpdatedAt
	return nil
}

// DeleteProduct removes a product together with its prices.
func (r *ProductRepository) DeleteProduct(_ context.Context, productID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[productID]; !ok {
		return apperrors.ErrNotFound
	}
	for id, pp := range r.store.prices {
		if pp.ProductID == productID {
			delete(r.store.prices, id)
		}
	}
	delete(r.store.products, productID)
	return nil
}
