// Package models defines the core domain models of the farm service:
// materials with their derived stock status, stock movements, and salary
// records with their derived payment status.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockStatus is the derived stock tier of a material.
type StockStatus string

const (
	StockOK       StockStatus = "ok"
	StockLow      StockStatus = "low"
	StockCritical StockStatus = "critical"
)

// Valid reports whether s is one of the known stock tiers.
func (s StockStatus) Valid() bool {
	switch s {
	case StockOK, StockLow, StockCritical:
		return true
	}
	return false
}

// Material defines the domain model for an inventory item.
type Material struct {
	// ID is the unique identifier for the material.
	ID uuid.UUID
	// Name is the material's display name, unique across the inventory.
	Name string
	// Unit is the unit the stock is counted in, e.g. "kg" or "bag".
	Unit string
	// Category groups materials on the dashboard (feed, fertilizer, ...).
	Category string
	// Supplier is the name of the usual supplier.
	Supplier string
	// CurrentStock is the quantity on hand.
	CurrentStock int64
	// MinStock is the reorder threshold.
	MinStock int64
	// PricePerUnit is the monetary price of one unit.
	PricePerUnit decimal.Decimal
	// Value is CurrentStock * PricePerUnit. Derived, never set directly.
	Value decimal.Decimal
	// Status is derived from CurrentStock and MinStock.
	Status StockStatus
	// CreatedAt records the timestamp when the material was created.
	CreatedAt time.Time
	// UpdatedAt records the timestamp when the material was last updated.
	UpdatedAt time.Time
}

// MaterialUpdate represents the fields that can be edited directly on a Material.
// Pointer types are used to allow partial updates. Value and Status are
// absent on purpose: they are always re-derived.
type MaterialUpdate struct {
	ID           uuid.UUID
	Name         *string
	Unit         *string
	Category     *string
	Supplier     *string
	CurrentStock *int64
	MinStock     *int64
	PricePerUnit *decimal.Decimal
}

// Apply copies the non-nil fields of u onto m.
func (u *MaterialUpdate) Apply(m *Material) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Unit != nil {
		m.Unit = *u.Unit
	}
	if u.Category != nil {
		m.Category = *u.Category
	}
	if u.Supplier != nil {
		m.Supplier = *u.Supplier
	}
	if u.CurrentStock != nil {
		m.CurrentStock = *u.CurrentStock
	}
	if u.MinStock != nil {
		m.MinStock = *u.MinStock
	}
	if u.PricePerUnit != nil {
		m.PricePerUnit = *u.PricePerUnit
	}
}

// MaterialFilter narrows a material listing. Empty fields match everything.
type MaterialFilter struct {
	Statuses []StockStatus
	Category string
}

// MovementKind classifies a stock movement.
type MovementKind string

const (
	MovementWithdrawal MovementKind = "withdrawal"
	MovementRestock    MovementKind = "restock"
	MovementAdjustment MovementKind = "adjustment"
)

// StockMovement is one entry of a material's stock ledger.
type StockMovement struct {
	ID         uuid.UUID
	MaterialID uuid.UUID
	Kind       MovementKind
	// Quantity is signed: negative for withdrawals, positive for restocks.
	Quantity    int64
	StockBefore int64
	StockAfter  int64
	Note        string
	CreatedAt   time.Time
}
