package models

import "github.com/shopspring/decimal"

// ProductPrice is a row of the product_prices table.
type ProductPrice struct {
	ProductPriceID int64           `db:"id"`
	ProductID      int64           `db:"product_id"`
	CurrencyID     int64           `db:"currency_id"`
	Price          decimal.Decimal `db:"price"`
	AuditFields
}
