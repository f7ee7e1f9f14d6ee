package models

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places money is stored with.
const MoneyScale = 2

var (
	// MaxAmount bounds prices and salary amounts (DECIMAL(12,2) columns).
	MaxAmount = decimal.New(1, 10)
	// MaxValue bounds a material's stock value (DECIMAL(14,2) column).
	MaxValue = decimal.New(1, 12)
)

// IsWholeCents reports whether d has no digits past MoneyScale, so that it
// is stored without rounding.
func IsWholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}

// ValidAmount reports whether d can be stored in an amount column as is.
func ValidAmount(d decimal.Decimal) bool {
	return IsWholeCents(d) && d.LessThan(MaxAmount)
}
