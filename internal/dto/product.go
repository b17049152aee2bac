package dto

import (
	"time"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	Name              string           `json:"name" binding:"required,max=255"`
	Price             *decimal.Decimal `json:"price" binding:"required,min=0"`
	Description       *string          `json:"description"`
	CurrencyID        *int64           `json:"currency_id" binding:"omitempty,min=1"`
	TaxCost           *decimal.Decimal `json:"tax_cost" binding:"omitempty,min=0"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost" binding:"omitempty,min=0"`
}

// UpdateProductRequest patches name, price and description only. Cost and
// currency fields are fixed at creation.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,min=0"`
	Description *string          `json:"description" binding:"omitempty,min=1"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	Price             decimal.Decimal  `json:"price"`
	Description       *string          `json:"description"`
	CurrencyID        *int64           `json:"currency_id"`
	TaxCost           *decimal.Decimal `json:"tax_cost"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ProductID,
		Name:              p.Name,
		Price:             p.Price,
		Description:       p.Description,
		CurrencyID:        p.CurrencyID,
		TaxCost:           p.TaxCost,
		ManufacturingCost: p.ManufacturingCost,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to a slice of ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
