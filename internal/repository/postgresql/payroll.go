package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/payroll"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolationCode = "23503"

type payrollRepository struct {
	db database.Querier
}

func NewPayrollRepository(db database.Querier) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.basic_salary, p.hours_worked, p.leave_days,
	p.tax, p.uif, p.leave_penalty, p.total_deductions, p.net_salary,
	p.pay_period_start, p.pay_period_end, p.created_at, p.updated_at,
	e.full_name, e.department
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.BasicSalary, &rec.HoursWorked, &rec.LeaveDays,
		&rec.Tax, &rec.UIF, &rec.LeavePenalty, &rec.TotalDeductions, &rec.NetSalary,
		&rec.PayPeriodStart, &rec.PayPeriodEnd, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.Department,
	)
	return rec, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO payroll (
				id, employee_id, basic_salary, hours_worked, leave_days,
				tax, uif, leave_penalty, total_deductions, net_salary,
				pay_period_start, pay_period_end
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING *
		)
		SELECT ` + payrollColumns + `
		FROM inserted p
		JOIN employees e ON p.employee_id = e.id
	`

	created, err := scanPayrollRecord(q.QueryRow(ctx, query,
		uuid.NewString(),
		record.EmployeeID,
		record.BasicSalary,
		record.HoursWorked,
		record.LeaveDays,
		record.Tax,
		record.UIF,
		record.LeavePenalty,
		record.TotalDeductions,
		record.NetSalary,
		record.PayPeriodStart,
		record.PayPeriodEnd,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return payroll.PayrollRecord{}, employee.ErrEmployeeNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll entry: %w", err)
	}

	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.id = $1 AND NOT p.is_deleted
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return rec, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context) ([]payroll.PayrollRecord, error) {
	return r.SearchByName(ctx, "")
}

// SearchByName implements payroll.PayrollRepository.
func (r *payrollRepository) SearchByName(ctx context.Context, name string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll p
		JOIN employees e ON p.employee_id = e.id
		WHERE NOT p.is_deleted AND e.full_name ILIKE $1
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search payroll entries: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll entries: %w", err)
	}

	return records, nil
}

// Update implements payroll.PayrollRepository. The snapshot is overwritten
// wholesale; deduction fields always arrive freshly computed.
func (r *payrollRepository) Update(ctx context.Context, record payroll.PayrollRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll SET
			basic_salary = $2,
			hours_worked = $3,
			leave_days = $4,
			tax = $5,
			uif = $6,
			leave_penalty = $7,
			total_deductions = $8,
			net_salary = $9,
			updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.BasicSalary,
		record.HoursWorked,
		record.LeaveDays,
		record.Tax,
		record.UIF,
		record.LeavePenalty,
		record.TotalDeductions,
		record.NetSalary,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

// SoftDelete implements payroll.PayrollRepository.
func (r *payrollRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
