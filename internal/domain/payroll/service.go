package payroll

import "context"

type PayrollService interface {
	List(ctx context.Context) ([]PayrollResponse, error)
	Search(ctx context.Context, name string) ([]PayrollResponse, error)
	Employees(ctx context.Context) ([]EmployeeOption, error)
	Get(ctx context.Context, id string) (PayslipResponse, error)
	Payslip(ctx context.Context, id string) (PayslipResponse, error)

	// PayslipPDF renders the payslip as a PDF document.
	PayslipPDF(ctx context.Context, id string) ([]byte, error)

	Create(ctx context.Context, req CreatePayrollRequest) (PayslipResponse, error)
	Update(ctx context.Context, req UpdatePayrollRequest) (PayslipResponse, error)
	Delete(ctx context.Context, id string) error
}
