package dto

import (
	"time"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductPriceRequest defines the data needed to add a price to a product.
// CurrencyID falls back to the product's default currency; ProductID, when
// given, must match the product in the path.
type CreateProductPriceRequest struct {
	Price      *decimal.Decimal `json:"price" binding:"required,min=0"`
	CurrencyID *int64           `json:"currency_id" binding:"omitempty,min=1"`
	ProductID  *int64           `json:"product_id" binding:"omitempty,min=1"`
}

// ProductPriceResponse is a price row joined with its currency and, on
// creation, its product.
type ProductPriceResponse struct {
	ID         int64            `json:"id"`
	Price      decimal.Decimal  `json:"price"`
	ProductID  int64            `json:"product_id"`
	CurrencyID int64            `json:"currency_id"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Product    *ProductResponse `json:"product,omitempty"`
	Currency   CurrencyResponse `json:"currency"`
}

// ToProductPriceResponse converts a domain.ProductPriceDetail to ProductPriceResponse DTO
func ToProductPriceResponse(d *domain.ProductPriceDetail) ProductPriceResponse {
	res := ProductPriceResponse{
		ID:         d.ProductPriceID,
		Price:      d.Price,
		ProductID:  d.ProductID,
		CurrencyID: d.CurrencyID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		Currency:   ToCurrencyResponse(&d.Currency),
	}
	if d.Product != nil {
		product := ToProductResponse(d.Product)
		res.Product = &product
	}
	return res
}

// ToListProductPriceResponse converts a slice of price details to response DTOs
func ToListProductPriceResponse(details []domain.ProductPriceDetail) []ProductPriceResponse {
	res := make([]ProductPriceResponse, len(details))
	for i := range details {
		res[i] = ToProductPriceResponse(&details[i])
	}
	return res
}
