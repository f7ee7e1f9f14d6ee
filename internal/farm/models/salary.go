package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the derived payment tier of a salary record.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Valid reports whether s is one of the known payment tiers.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPending, PaymentPaid:
		return true
	}
	return false
}

// SalaryMonthLayout is the time layout of Salary.SalaryMonth.
const SalaryMonthLayout = "2006-01"

// Salary defines the domain model for one staff member's pay period.
type Salary struct {
	// ID is the unique identifier for the salary record.
	ID uuid.UUID
	// StaffName names the staff member being paid.
	StaffName string
	// SalaryMonth is the pay period in YYYY-MM form.
	SalaryMonth string
	// BaseSalary is the target amount for the period.
	BaseSalary decimal.Decimal
	// PaidAmount is the cumulative amount paid so far.
	PaidAmount decimal.Decimal
	// Status is derived from PaidAmount and BaseSalary.
	Status PaymentStatus
	// Note is a free-form administrative remark.
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SalaryUpdate represents an administrative edit of a Salary.
// Pointer types are used to allow partial updates.
type SalaryUpdate struct {
	ID          uuid.UUID
	StaffName   *string
	SalaryMonth *string
	BaseSalary  *decimal.Decimal
	PaidAmount  *decimal.Decimal
	Note        *string
}

// Apply copies the non-nil fields of u onto s.
func (u *SalaryUpdate) Apply(s *Salary) {
	if u.StaffName != nil {
		s.StaffName = *u.StaffName
	}
	if u.SalaryMonth != nil {
		s.SalaryMonth = *u.SalaryMonth
	}
	if u.BaseSalary != nil {
		s.BaseSalary = *u.BaseSalary
	}
	if u.PaidAmount != nil {
		s.PaidAmount = *u.PaidAmount
	}
	if u.Note != nil {
		s.Note = *u.Note
	}
}

// SalaryFilter narrows a salary listing. Empty fields match everything.
type SalaryFilter struct {
	Status      PaymentStatus
	SalaryMonth string
}
