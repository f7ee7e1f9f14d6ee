// Package models contains the persistence records of the farm service,
// configured to work using GORM as the ORM. They mirror the domain models
// one to one and convert to and from them.
package models

import (
	"time"

	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material is the materials table.
type Material struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"size:100;uniqueIndex"`
	Unit         string          `gorm:"size:20"`
	Category     string          `gorm:"size:50;index"`
	Supplier     string          `gorm:"size:100"`
	CurrentStock int64           `gorm:"not null;check:current_stock >= 0"`
	MinStock     int64           `gorm:"not null;check:min_stock >= 0"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Value        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status       string          `gorm:"size:10;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FromMaterial builds a record from the domain model.
func FromMaterial(m *models.Material) *Material {
	return &Material{
		ID:           m.ID,
		Name:         m.Name,
		Unit:         m.Unit,
		Category:     m.Category,
		Supplier:     m.Supplier,
		CurrentStock: m.CurrentStock,
		MinStock:     m.MinStock,
		PricePerUnit: m.PricePerUnit,
		Value:        m.Value,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToModel converts the record to the domain model.
func (r *Material) ToModel() *models.Material {
	return &models.Material{
		ID:           r.ID,
		Name:         r.Name,
		Unit:         r.Unit,
		Category:     r.Category,
		Supplier:     r.Supplier,
		CurrentStock: r.CurrentStock,
		MinStock:     r.MinStock,
		PricePerUnit: r.PricePerUnit,
		Value:        r.Value,
		Status:       models.StockStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// StockMovement is the stock_movements ledger table.
type StockMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MaterialID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"size:20;not null"`
	Quantity    int64     `gorm:"not null"`
	StockBefore int64     `gorm:"not null"`
	StockAfter  int64     `gorm:"not null"`
	Note        string    `gorm:"size:255"`
	CreatedAt   time.Time
}

// FromStockMovement builds a record from the domain model.
func FromStockMovement(m *models.StockMovement) *StockMovement {
	return &StockMovement{
		ID:          m.ID,
		MaterialID:  m.MaterialID,
		Kind:        string(m.Kind),
		Quantity:    m.Quantity,
		StockBefore: m.StockBefore,
		StockAfter:  m.StockAfter,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
	}
}

// ToModel converts the record to the domain model.
func (r *StockMovement) ToModel() *models.StockMovement {
	return &models.StockMovement{
		ID:          r.ID,
		MaterialID:  r.MaterialID,
		Kind:        models.MovementKind(r.Kind),
		Quantity:    r.Quantity,
		StockBefore: r.StockBefore,
		StockAfter:  r.StockAfter,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
	}
}

// TableName pins the table name used by the migrations.
func (Material) TableName() string { return "materials" }

// TableName pins the table name used by the migrations.
func (StockMovement) TableName() string { return "stock_movements" }
