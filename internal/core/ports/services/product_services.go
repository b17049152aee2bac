package services

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/dto"
)

// ProductReaderSvc defines read operations for product data
type ProductReaderSvc interface {
	// GetProductByID retrieves a specific product or apperrors.ErrNotFound.
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// ListProducts retrieves a page of products filtered by name.
	ListProducts(ctx context.Context, filter domain.ListFilter) (*domain.Page[domain.Product], error)
}

// ProductWriterSvc defines write operations for product data
type ProductWriterSvc interface {
	// CreateProduct validates and persists a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct applies name, price and description changes to a product.
	UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct removes a product and its prices.
	DeleteProduct(ctx context.Context, productID int64) error
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}

// ProductPriceSvcFacade defines the product price ledger operations
type ProductPriceSvcFacade interface {
	// CreateProductPrice adds a price to a product and returns it joined with
	// its product and currency.
	CreateProductPrice(ctx context.Context, productID int64, req dto.CreateProductPriceRequest) (*domain.ProductPriceDetail, error)

	// ListProductPrices returns all prices of a product, each joined with its currency.
	ListProductPrices(ctx context.Context, productID int64) ([]domain.ProductPriceDetail, error)
}
