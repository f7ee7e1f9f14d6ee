package models

import (
	"time"

	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Salary is the salaries table.
type Salary struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StaffName   string          `gorm:"size:100;not null;index"`
	SalaryMonth string          `gorm:"size:7;not null;index"`
	BaseSalary  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status      string          `gorm:"size:10;not null;index"`
	Note        string          `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FromSalary builds a record from the domain model.
func FromSalary(s *models.Salary) *Salary {
	return &Salary{
		ID:          s.ID,
		StaffName:   s.StaffName,
		SalaryMonth: s.SalaryMonth,
		BaseSalary:  s.BaseSalary,
		PaidAmount:  s.PaidAmount,
		Status:      string(s.Status),
		Note:        s.Note,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToModel converts the record to the domain model.
func (r *Salary) ToModel() *models.Salary {
	return &models.Salary{
		ID:          r.ID,
		StaffName:   r.StaffName,
		SalaryMonth: r.SalaryMonth,
		BaseSalary:  r.BaseSalary,
		PaidAmount:  r.PaidAmount,
		Status:      models.PaymentStatus(r.Status),
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// TableName pins the table name used by the migrations.
func (Salary) TableName() string { return "salaries" }
