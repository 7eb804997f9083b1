package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord is an immutable snapshot of one payroll computation. Updates
// re-run the whole formula from fresh inputs and overwrite the snapshot;
// stored deduction fields are never patched individually.
type PayrollRecord struct {
	ID              string
	EmployeeID      string
	BasicSalary     decimal.Decimal
	HoursWorked     int
	LeaveDays       int
	Tax             decimal.Decimal
	UIF             decimal.Decimal
	LeavePenalty    decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	PayPeriodStart  time.Time
	PayPeriodEnd    time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined employee display fields
	EmployeeName string
	Department   string
}
