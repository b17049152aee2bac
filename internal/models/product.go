package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Product is a row of the products table. Nullable columns use the
// sql.Null* family so rows scan without intermediate pointers.
type Product struct {
	ProductID         int64               `db:"id"`
	Name              string              `db:"name"`
	Price             decimal.Decimal     `db:"price"`
	Description       sql.NullString      `db:"description"`
	CurrencyID        sql.NullInt64       `db:"currency_id"`
	TaxCost           decimal.NullDecimal `db:"tax_cost"`
	ManufacturingCost decimal.NullDecimal `db:"manufacturing_cost"`
	AuditFields
}
