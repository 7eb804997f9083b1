package payroll

import (
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PayrollResponse is the denormalized list row: payroll amounts joined with
// the employee's display fields.
type PayrollResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Name        string          `json:"name"`
	Department  string          `json:"department"`
	Salary      decimal.Decimal `json:"salary"`
	HoursWorked int             `json:"hours_worked"`
	LeaveDays   int             `json:"leave_days"`
	Deductions  decimal.Decimal `json:"deductions"`
	FinalSalary decimal.Decimal `json:"final_salary"`
}

// PayslipResponse adds the deduction components and the pay period window.
type PayslipResponse struct {
	PayrollResponse
	Tax            decimal.Decimal `json:"tax"`
	UIF            decimal.Decimal `json:"uif"`
	LeavePenalty   decimal.Decimal `json:"leave_penalty"`
	PayPeriodStart string          `json:"pay_period_start"`
	PayPeriodEnd   string          `json:"pay_period_end"`
}

// EmployeeOption is one entry of the employee dropdown.
type EmployeeOption struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
}

type CreatePayrollRequest struct {
	EmployeeID  string           `json:"employee_id"`
	HoursWorked *int             `json:"hours_worked"`
	LeaveDays   *int             `json:"leave_days"`
	Salary      *decimal.Decimal `json:"salary"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.HoursWorked == nil {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "hours_worked is required"})
	} else if *r.HoursWorked < 0 {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "hours_worked must not be negative"})
	}
	if r.LeaveDays == nil {
		errs = append(errs, validator.ValidationError{Field: "leave_days", Message: "leave_days is required"})
	} else if *r.LeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "leave_days", Message: "leave_days must not be negative"})
	}
	if r.Salary == nil {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary is required"})
	} else if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePayrollRequest struct {
	ID          string           `json:"-"`
	HoursWorked *int             `json:"hours_worked"`
	LeaveDays   *int             `json:"leave_days"`
	Salary      *decimal.Decimal `json:"salary"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}

	create := CreatePayrollRequest{
		EmployeeID:  "-",
		HoursWorked: r.HoursWorked,
		LeaveDays:   r.LeaveDays,
		Salary:      r.Salary,
	}
	if err := create.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
