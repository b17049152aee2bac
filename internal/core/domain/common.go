package domain

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard timestamps for persisted entities.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MaxNameLength is the storage limit for name columns, in characters.
const MaxNameLength = 255

// Money and rates are stored as NUMERIC(18,6): six fractional digits and at
// most twelve integer digits.
const (
	AmountScale         = 6
	amountIntegerDigits = 18 - AmountScale
)

// MaxAmount is the smallest value that no longer fits an amount column.
var MaxAmount = decimal.New(1, amountIntegerDigits)

// RoundAmount rounds d half away from zero to the stored scale.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountScale)
}

// RoundAmountPtr is RoundAmount for optional amounts.
func RoundAmountPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := RoundAmount(*d)
	return &r
}

func amountTooLarge(d decimal.Decimal) bool {
	return RoundAmount(d).GreaterThanOrEqual(MaxAmount)
}

func nameTooLong(name string) bool {
	return utf8.RuneCountInString(name) > MaxNameLength
}
