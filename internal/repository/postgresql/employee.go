package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type employeeRepository struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func translateEmployeePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return employee.ErrEmailExists
	}
	return err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, full_name, position, department, salary, employment_history,
			email, phone_number, profile_image, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	emp.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.FullName,
		emp.Position,
		emp.Department,
		emp.Salary,
		emp.EmploymentHistory,
		emp.Email,
		emp.PhoneNumber,
		emp.ProfileImage,
		emp.Status,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if translated := translateEmployeePgError(err); translated != err {
			return employee.Employee{}, translated
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, position, department, salary, employment_history,
		       email, phone_number, profile_image, status, created_at, updated_at
		FROM employees
		WHERE id = $1 AND NOT is_deleted
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Position, &emp.Department, &emp.Salary,
		&emp.EmploymentHistory, &emp.Email, &emp.PhoneNumber, &emp.ProfileImage,
		&emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, position, department, salary, employment_history,
		       email, phone_number, profile_image, status, created_at, updated_at
		FROM employees
		WHERE NOT is_deleted
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Position, &emp.Department, &emp.Salary,
			&emp.EmploymentHistory, &emp.Email, &emp.PhoneNumber, &emp.ProfileImage,
			&emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			full_name = $2,
			position = $3,
			department = $4,
			salary = $5,
			employment_history = $6,
			email = $7,
			phone_number = $8,
			profile_image = $9,
			status = $10,
			updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.FullName,
		emp.Position,
		emp.Department,
		emp.Salary,
		emp.EmploymentHistory,
		emp.Email,
		emp.PhoneNumber,
		emp.ProfileImage,
		emp.Status,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if translated := translateEmployeePgError(err); translated != err {
			return employee.Employee{}, translated
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SyncLeaveStatus implements employee.EmployeeRepository. The status is
// derived and written in one statement, so concurrent leave transitions for
// the same employee cannot leave a stale value behind.
func (r *employeeRepository) SyncLeaveStatus(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			status = CASE WHEN EXISTS (
				SELECT 1 FROM leave_requests
				WHERE employee_id = $1 AND status = 'Approved' AND NOT is_deleted
			) THEN 'On Leave' ELSE 'Active' END,
			updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
	`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to sync employee leave status: %w", err)
	}

	return nil
}
