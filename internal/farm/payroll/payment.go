// Package payroll derives the payment status of salary records and applies
// incremental payments to them.
package payroll

import (
	"fmt"
	"time"

	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/shopspring/decimal"
)

// StatusFor classifies a paid amount against the base salary.
// The paid test runs first, so paid == base is paid.
func StatusFor(paid, base decimal.Decimal) models.PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(base):
		return models.PaymentPaid
	case !paid.IsPositive():
		return models.PaymentUnpaid
	default:
		return models.PaymentPending
	}
}

// RecomputeStatus returns s with Status re-derived. Amounts are untouched.
func RecomputeStatus(s models.Salary) models.Salary {
	s.Status = StatusFor(s.PaidAmount, s.BaseSalary)
	return s
}

// ApplyPayment adds amount to the paid total of s. Overpayment is allowed.
// s itself is never modified; on error the zero Salary is returned.
func ApplyPayment(s models.Salary, amount decimal.Decimal) (models.Salary, error) {
	if !amount.IsPositive() {
		return models.Salary{}, fmt.Errorf("%w: payment amount must be greater than zero", e.ErrInvalidInput)
	}
	if !models.IsWholeCents(amount) {
		return models.Salary{}, fmt.Errorf("%w: payment amount must have at most %d decimal places",
			e.ErrInvalidInput, models.MoneyScale)
	}
	if !models.ValidAmount(s.PaidAmount.Add(amount)) {
		return models.Salary{}, fmt.Errorf("%w: paid amount must be below %s", e.ErrInvalidInput, models.MaxAmount)
	}
	s.PaidAmount = s.PaidAmount.Add(amount)
	return RecomputeStatus(s), nil
}

// Validate checks the directly editable fields of a salary record.
func Validate(s models.Salary) error {
	if s.StaffName == "" {
		return fmt.Errorf("%w: staff name required", e.ErrInvalidInput)
	}
	if !s.BaseSalary.IsPositive() {
		return fmt.Errorf("%w: base salary must be greater than zero", e.ErrInvalidInput)
	}
	if s.PaidAmount.IsNegative() {
		return fmt.Errorf("%w: paid amount must not be negative", e.ErrInvalidInput)
	}
	if !models.ValidAmount(s.BaseSalary) || !models.ValidAmount(s.PaidAmount) {
		return fmt.Errorf("%w: amounts must have at most %d decimal places and be below %s",
			e.ErrInvalidInput, models.MoneyScale, models.MaxAmount)
	}
	if _, err := time.Parse(models.SalaryMonthLayout, s.SalaryMonth); err != nil {
		return fmt.Errorf("%w: salary month must be YYYY-MM", e.ErrInvalidInput)
	}
	return nil
}

// New fills the defaults of a freshly created salary record: a zero paid
// amount, the pay period of now, and a derived status. Any status supplied
// by the caller is discarded.
func New(s models.Salary, now time.Time) (models.Salary, error) {
	if s.SalaryMonth == "" {
		s.SalaryMonth = now.Format(models.SalaryMonthLayout)
	}
	if err := Validate(s); err != nil {
		return models.Salary{}, err
	}
	return RecomputeStatus(s), nil
}
