package mapping

import (
	"database/sql"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	m := models.Product{
		ProductID:   d.ProductID,
		Name:        d.Name,
		Price:       d.Price,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.Description != nil {
		m.Description = sql.NullString{String: *d.Description, Valid: true}
	}
	if d.CurrencyID != nil {
		m.CurrencyID = sql.NullInt64{Int64: *d.CurrencyID, Valid: true}
	}
	if d.TaxCost != nil {
		m.TaxCost = decimal.NewNullDecimal(*d.TaxCost)
	}
	if d.ManufacturingCost != nil {
		m.ManufacturingCost = decimal.NewNullDecimal(*d.ManufacturingCost)
	}
	return m
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	d := domain.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		Price:       m.Price,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.Description.Valid {
		desc := m.Description.String
		d.Description = &desc
	}
	if m.CurrencyID.Valid {
		id := m.CurrencyID.Int64
		d.CurrencyID = &id
	}
	if m.TaxCost.Valid {
		tax := m.TaxCost.Decimal
		d.TaxCost = &tax
	}
	if m.ManufacturingCost.Valid {
		cost := m.ManufacturingCost.Decimal
		d.ManufacturingCost = &cost
	}
	return d
}

// ToDomainProductSlice converts a slice of model Products to a slice of domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
