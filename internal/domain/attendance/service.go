package attendance

import "context"

type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (MarkResult, error)
	List(ctx context.Context) ([]AttendanceResponse, error)
	ListByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
	Today(ctx context.Context) ([]DailyRow, error)
	DailySummary(ctx context.Context, date string) (DailySummaryResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) error
	Delete(ctx context.Context, id string) error
}
