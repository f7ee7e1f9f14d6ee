// Package inventory holds the stock rules of the farm service: withdrawing
// and restocking materials, and deriving a material's value and stock tier.
// The functions are pure; callers own persistence and serialization.
package inventory

import (
	"fmt"
	"math"

	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/shopspring/decimal"
)

// StatusFor classifies a stock level against its minimum.
// Zero or negative stock is critical even when minStock is zero, and a
// stock equal to minStock is low.
func StatusFor(stock, minStock int64) models.StockStatus {
	switch {
	case stock <= 0:
		return models.StockCritical
	case stock <= minStock:
		return models.StockLow
	default:
		return models.StockOK
	}
}

// ValueOf returns stock * pricePerUnit.
func ValueOf(stock int64, pricePerUnit decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(stock).Mul(pricePerUnit)
}

// Recompute returns m with Value and Status re-derived from its stock,
// threshold and price.
func Recompute(m models.Material) models.Material {
	m.Value = ValueOf(m.CurrentStock, m.PricePerUnit)
	m.Status = StatusFor(m.CurrentStock, m.MinStock)
	return m
}

// Validate checks the directly editable fields of a material.
func Validate(m models.Material) error {
	if m.Name == "" || len(m.Name) > 100 {
		return fmt.Errorf("%w: invalid name", e.ErrInvalidInput)
	}
	if m.CurrentStock < 0 {
		return fmt.Errorf("%w: current stock must not be negative", e.ErrInvalidInput)
	}
	if m.MinStock < 0 {
		return fmt.Errorf("%w: minimum stock must not be negative", e.ErrInvalidInput)
	}
	if m.PricePerUnit.IsNegative() {
		return fmt.Errorf("%w: price per unit must not be negative", e.ErrInvalidInput)
	}
	if !models.ValidAmount(m.PricePerUnit) {
		return fmt.Errorf("%w: price per unit must have at most %d decimal places and be below %s",
			e.ErrInvalidInput, models.MoneyScale, models.MaxAmount)
	}
	return checkValue(m.CurrentStock, m.PricePerUnit)
}

// checkValue rejects stock levels whose value would not fit the value column.
func checkValue(stock int64, pricePerUnit decimal.Decimal) error {
	if ValueOf(stock, pricePerUnit).GreaterThanOrEqual(models.MaxValue) {
		return fmt.Errorf("%w: stock value must be below %s", e.ErrInvalidInput, models.MaxValue)
	}
	return nil
}

// Withdraw takes quantity units out of m and returns the updated material.
// m itself is never modified; on error the zero Material is returned.
func Withdraw(m models.Material, quantity int64) (models.Material, error) {
	if quantity <= 0 {
		return models.Material{}, fmt.Errorf("%w: quantity must be greater than zero", e.ErrInvalidInput)
	}
	if m.CurrentStock < quantity {
		return models.Material{}, fmt.Errorf("%w: requested %d, available %d",
			e.ErrInsufficientStock, quantity, m.CurrentStock)
	}
	m.CurrentStock -= quantity
	return Recompute(m), nil
}

// Restock adds quantity units to m and returns the updated material.
func Restock(m models.Material, quantity int64) (models.Material, error) {
	if quantity <= 0 {
		return models.Material{}, fmt.Errorf("%w: quantity must be greater than zero", e.ErrInvalidInput)
	}
	if quantity > math.MaxInt64-m.CurrentStock {
		return models.Material{}, fmt.Errorf("%w: restock of %d overflows stock %d",
			e.ErrInvalidInput, quantity, m.CurrentStock)
	}
	if err := checkValue(m.CurrentStock+quantity, m.PricePerUnit); err != nil {
		return models.Material{}, err
	}
	m.CurrentStock += quantity
	return Recompute(m), nil
}

// NeedsAttention reports whether a stock tier should raise an alert.
func NeedsAttention(s models.StockStatus) bool {
	return s == models.StockLow || s == models.StockCritical
}
