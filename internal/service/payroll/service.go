package payroll

import (
	"context"
	"time"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/payroll"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/payslip"
)

const dateLayout = "2006-01-02"

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository

	// now pins the pay period to the calendar month a record is created in.
	now func() time.Time
}

func NewPayrollService(
	payrollRepository payroll.PayrollRepository,
	employeeRepository employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepository,
		EmployeeRepository: employeeRepository,
		now:                time.Now,
	}
}

func toResponse(rec payroll.PayrollRecord) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Name:        rec.EmployeeName,
		Department:  rec.Department,
		Salary:      rec.BasicSalary,
		HoursWorked: rec.HoursWorked,
		LeaveDays:   rec.LeaveDays,
		Deductions:  rec.TotalDeductions,
		FinalSalary: rec.NetSalary,
	}
}

func toPayslip(rec payroll.PayrollRecord) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		PayrollResponse: toResponse(rec),
		Tax:             rec.Tax,
		UIF:             rec.UIF,
		LeavePenalty:    rec.LeavePenalty,
		PayPeriodStart:  rec.PayPeriodStart.Format(dateLayout),
		PayPeriodEnd:    rec.PayPeriodEnd.Format(dateLayout),
	}
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context) ([]payroll.PayrollResponse, error) {
	records, err := s.PayrollRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return responses, nil
}

// Search implements payroll.PayrollService.
func (s *PayrollServiceImpl) Search(ctx context.Context, name string) ([]payroll.PayrollResponse, error) {
	records, err := s.PayrollRepository.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return responses, nil
}

// Employees implements payroll.PayrollService. It backs the employee picker on
// the payroll form; the registry salary pre-fills the salary input.
func (s *PayrollServiceImpl) Employees(ctx context.Context) ([]payroll.EmployeeOption, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]payroll.EmployeeOption, 0, len(employees))
	for _, emp := range employees {
		options = append(options, payroll.EmployeeOption{
			ID:         emp.ID,
			Name:       emp.FullName,
			Department: emp.Department,
			Salary:     emp.Salary,
		})
	}

	return options, nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return toPayslip(rec), nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	return s.Get(ctx, id)
}

// PayslipPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) PayslipPDF(ctx context.Context, id string) ([]byte, error) {
	slip, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return payslip.Render(slip)
}

// Create implements payroll.PayrollService. The salary in the request is the
// one the computation runs on; it is snapshotted into the record and later
// registry edits do not touch it.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayslipResponse{}, err
	}

	breakdown := payroll.Calculate(*req.Salary, *req.LeaveDays)
	periodStart, periodEnd := monthBounds(s.now())

	created, err := s.PayrollRepository.Create(ctx, payroll.PayrollRecord{
		EmployeeID:      req.EmployeeID,
		BasicSalary:     *req.Salary,
		HoursWorked:     *req.HoursWorked,
		LeaveDays:       *req.LeaveDays,
		Tax:             breakdown.Tax,
		UIF:             breakdown.UIF,
		LeavePenalty:    breakdown.LeavePenalty,
		TotalDeductions: breakdown.TotalDeductions,
		NetSalary:       breakdown.NetSalary,
		PayPeriodStart:  periodStart,
		PayPeriodEnd:    periodEnd,
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return toPayslip(created), nil
}

// Update implements payroll.PayrollService. The whole formula re-runs from the
// new inputs; the pay period keeps the window set at creation.
func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	current, err := s.PayrollRepository.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	breakdown := payroll.Calculate(*req.Salary, *req.LeaveDays)

	current.BasicSalary = *req.Salary
	current.HoursWorked = *req.HoursWorked
	current.LeaveDays = *req.LeaveDays
	current.Tax = breakdown.Tax
	current.UIF = breakdown.UIF
	current.LeavePenalty = breakdown.LeavePenalty
	current.TotalDeductions = breakdown.TotalDeductions
	current.NetSalary = breakdown.NetSalary

	if err := s.PayrollRepository.Update(ctx, current); err != nil {
		return payroll.PayslipResponse{}, err
	}

	return toPayslip(current), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	return s.PayrollRepository.SoftDelete(ctx, id)
}

func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}
