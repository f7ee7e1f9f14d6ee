// Package report renders inventory and payroll listings as Excel workbooks.
package report

import (
	"fmt"
	"io"

	"github.com/gartstein/farm/internal/farm/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	inventorySheet = "Inventory"
	payrollSheet   = "Payroll"
)

// Inventory writes one row per material followed by a total stock value row.
func Inventory(w io.Writer, materials []*models.Material) error {
	header := []any{"Name", "Category", "Unit", "Supplier", "Current stock", "Min stock", "Price per unit", "Value", "Status"}

	total := decimal.Zero
	rows := make([][]any, 0, len(materials)+1)
	for _, m := range materials {
		total = total.Add(m.Value)
		rows = append(rows, []any{
			m.Name,
			m.Category,
			m.Unit,
			m.Supplier,
			m.CurrentStock,
			m.MinStock,
			m.PricePerUnit.InexactFloat64(),
			m.Value.InexactFloat64(),
			string(m.Status),
		})
	}
	rows = append(rows, []any{"Total", "", "", "", "", "", "", total.InexactFloat64(), ""})

	return write(w, inventorySheet, header, rows)
}

// Payroll writes one row per salary record followed by totals of the base
// and paid amounts.
func Payroll(w io.Writer, salaries []*models.Salary) error {
	header := []any{"Staff", "Month", "Base salary", "Paid amount", "Outstanding", "Status", "Note"}

	base, paid := decimal.Zero, decimal.Zero
	rows := make([][]any, 0, len(salaries)+1)
	for _, s := range salaries {
		base = base.Add(s.BaseSalary)
		paid = paid.Add(s.PaidAmount)
		rows = append(rows, []any{
			s.StaffName,
			s.SalaryMonth,
			s.BaseSalary.InexactFloat64(),
			s.PaidAmount.InexactFloat64(),
			outstanding(s.BaseSalary, s.PaidAmount).InexactFloat64(),
			string(s.Status),
			s.Note,
		})
	}
	rows = append(rows, []any{"Total", "", base.InexactFloat64(), paid.InexactFloat64(), "", "", ""})

	return write(w, payrollSheet, header, rows)
}

// outstanding never goes below zero; overpayments are not owed back.
func outstanding(base, paid decimal.Decimal) decimal.Decimal {
	if paid.GreaterThanOrEqual(base) {
		return decimal.Zero
	}
	return base.Sub(paid)
}

func write(w io.Writer, sheet string, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
