package mapping

import (
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/models"
)

// ToModelProductPrice converts a domain ProductPrice to a model ProductPrice
func ToModelProductPrice(d domain.ProductPrice) models.ProductPrice {
	return models.ProductPrice{
		ProductPriceID: d.ProductPriceID,
		ProductID:      d.ProductID,
		CurrencyID:     d.CurrencyID,
		Price:          d.Price,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProductPrice converts a model ProductPrice to a domain ProductPrice
func ToDomainProductPrice(m models.ProductPrice) domain.ProductPrice {
	return domain.ProductPrice{
		ProductPriceID: m.ProductPriceID,
		ProductID:      m.ProductID,
		CurrencyID:     m.CurrencyID,
		Price:          m.Price,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductPriceDetail joins a price row with its currency row.
func ToDomainProductPriceDetail(price models.ProductPrice, currency models.Currency) domain.ProductPriceDetail {
	return domain.ProductPriceDetail{
		ProductPrice: ToDomainProductPrice(price),
		Currency:     ToDomainCurrency(currency),
	}
}
