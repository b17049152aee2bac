package repositories

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// ProductPriceReader defines read operations for product price data
type ProductPriceReader interface {
	// ListPricesByProductID returns every price row of a product in creation
	// order, each joined with its currency.
	ListPricesByProductID(ctx context.Context, productID int64) ([]domain.ProductPriceDetail, error)
}

// ProductPriceWriter defines write operations for product price data
type ProductPriceWriter interface {
	// SaveProductPrice inserts a price row. The owning product is re-checked in
	// the same transaction as the insert; apperrors.ErrNotFound is returned when
	// it no longer exists.
	SaveProductPrice(ctx context.Context, price *domain.ProductPrice) error
}

// ProductPriceRepositoryFacade combines all product price repository interfaces
type ProductPriceRepositoryFacade interface {
	ProductPriceReader
	ProductPriceWriter
}
