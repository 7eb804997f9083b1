package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/attendance"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db database.Querier
}

func NewAttendanceRepository(db database.Querier) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository. The ON CONFLICT target is
// the partial unique index on (employee_id, date) WHERE NOT is_deleted, which
// is what enforces the at-most-one-record invariant under concurrent marks.
// xmax = 0 only holds for a freshly inserted row, distinguishing create from
// update in the same round-trip.
func (r *attendanceRepository) Upsert(ctx context.Context, employeeID string, date time.Time, status attendance.Status) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, employee_id, date, attendance_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) WHERE NOT is_deleted DO UPDATE
		SET attendance_status = EXCLUDED.attendance_status, updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`

	att := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}

	var created bool
	err := q.QueryRow(ctx, query, uuid.NewString(), employeeID, date, status).Scan(
		&att.ID, &att.CreatedAt, &att.UpdatedAt, &created,
	)
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("failed to mark attendance: %w", err)
	}

	return att, created, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.attendance_status, a.created_at, a.updated_at,
		       e.full_name, e.position, e.department
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
		WHERE NOT a.is_deleted
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.attendance_status, a.created_at, a.updated_at,
		       e.full_name, e.position, e.department
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.date = $1 AND NOT a.is_deleted
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeePosition, &att.EmployeeDepartment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

// ListDaily implements attendance.AttendanceRepository. Employees without a
// record for the date come back with a NULL status.
func (r *attendanceRepository) ListDaily(ctx context.Context, date time.Time) ([]attendance.DailyRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.position, e.department, e.profile_image,
		       a.attendance_status, a.date
		FROM employees e
		LEFT JOIN attendance a
			ON e.id = a.employee_id AND a.date = $1 AND NOT a.is_deleted
		WHERE NOT e.is_deleted
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily attendance: %w", err)
	}
	defer rows.Close()

	var result []attendance.DailyRow
	for rows.Next() {
		var row attendance.DailyRow
		var rowDate *time.Time
		if err := rows.Scan(
			&row.EmployeeID, &row.FullName, &row.Position, &row.Department,
			&row.ProfileImage, &row.Status, &rowDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan daily attendance: %w", err)
		}
		if rowDate != nil {
			formatted := rowDate.Format("2006-01-02")
			row.Date = &formatted
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily attendance: %w", err)
	}

	return result, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByStatus(ctx context.Context, date time.Time) (map[attendance.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT attendance_status, COUNT(*)
		FROM attendance
		WHERE date = $1 AND NOT is_deleted
		GROUP BY attendance_status
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int)
	for rows.Next() {
		var status attendance.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan attendance count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance counts: %w", err)
	}

	return counts, nil
}

// UpdateStatus implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpdateStatus(ctx context.Context, id string, status attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance SET attendance_status = $2, updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// SoftDelete implements attendance.AttendanceRepository.
func (r *attendanceRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
