// Package payslip renders a payroll entry as a simple one-page PDF.
package payslip

import (
	"bytes"
	"fmt"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
)

// Render produces the PDF bytes for one payslip.
func Render(slip payroll.PayslipResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", slip.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", slip.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", slip.PayPeriodStart, slip.PayPeriodEnd))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic salary: %s", slip.Salary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Hours worked: %d", slip.HoursWorked))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Leave days: %d", slip.LeaveDays))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Tax: %s", slip.Tax.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("UIF: %s", slip.UIF.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Leave penalty: %s", slip.LeavePenalty.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %s", slip.Deductions.StringFixed(2)))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %s", slip.FinalSalary.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	return buf.Bytes(), nil
}
