package models

import "github.com/shopspring/decimal"

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyID   int64           `db:"id"`
	Name         string          `db:"name"`
	Symbol       string          `db:"symbol"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
	AuditFields
}
