package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert atomically inserts a record for (employeeID, date) or, when one
	// already exists, replaces its status. The returned flag reports whether a
	// new row was created; two concurrent marks for the same key cannot both
	// insert.
	Upsert(ctx context.Context, employeeID string, date time.Time, status Status) (Attendance, bool, error)

	List(ctx context.Context) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListDaily left-joins all non-deleted employees against the records for
	// the date, so unmarked employees appear with no status.
	ListDaily(ctx context.Context, date time.Time) ([]DailyRow, error)

	// CountByStatus groups the non-deleted records for the date by status.
	CountByStatus(ctx context.Context, date time.Time) (map[Status]int, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
	SoftDelete(ctx context.Context, id string) error
}
