package repositories

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its identifier.
	// It returns apperrors.ErrNotFound when the product does not exist.
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// ListProducts retrieves a page of products matching the filter, plus the total match count.
	ListProducts(ctx context.Context, filter domain.ListFilter) ([]domain.Product, int, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product and fills in its generated ID and timestamps.
	SaveProduct(ctx context.Context, product *domain.Product) error

	// UpdateProduct overwrites an existing product's mutable fields.
	UpdateProduct(ctx context.Context, product *domain.Product) error

	// DeleteProduct removes a product together with its price rows.
	DeleteProduct(ctx context.Context, productID int64) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
