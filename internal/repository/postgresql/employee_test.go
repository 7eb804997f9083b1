package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

func TestTranslateEmployeePgError(t *testing.T) {
	t.Parallel()

	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode}
	if !errors.Is(translateEmployeePgError(uniqueErr), employee.ErrEmailExists) {
		t.Fatalf("expected unique violation to map to ErrEmailExists")
	}

	other := errors.New("other")
	if translateEmployeePgError(other) != other {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestEmployeeRepository_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs(pgxmock.AnyArg(), "Jane Doe", "Engineer", "Engineering",
			decimal.NewFromInt(10000), "", "jane@example.com", "", "", employee.StatusActive).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err = repo.Create(context.Background(), employee.Employee{
		FullName:   "Jane Doe",
		Position:   "Engineer",
		Department: "Engineering",
		Salary:     decimal.NewFromInt(10000),
		Email:      "jane@example.com",
		Status:     employee.StatusActive,
	})
	if !errors.Is(err, employee.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees")).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "full_name", "position", "department", "salary", "employment_history",
			"email", "phone_number", "profile_image", "status", "created_at", "updated_at",
		}))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_SyncLeaveStatus(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("status = CASE WHEN EXISTS")).
		WithArgs("emp-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.SyncLeaveStatus(context.Background(), "emp-1"); err != nil {
		t.Fatalf("SyncLeaveStatus returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_SoftDelete_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE employees SET is_deleted")).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.SoftDelete(context.Background(), "missing")
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
