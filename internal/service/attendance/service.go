package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/attendance"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
)

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository

	// now is injectable so the "today" views are testable.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		now:                  time.Now,
	}
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		FullName:   att.EmployeeName,
		Position:   att.EmployeePosition,
		Department: att.EmployeeDepartment,
		Date:       att.Date.Format(dateLayout),
		Status:     string(att.Status),
	}
}

// Mark implements attendance.AttendanceService. Marking is an upsert keyed on
// (employee, date): the first mark of the day creates the record, a repeat
// mark replaces its status.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkResult{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.MarkResult{}, err
	}

	date, _ := time.Parse(dateLayout, req.Date)
	att, created, err := s.AttendanceRepository.Upsert(ctx, req.EmployeeID, date, attendance.Status(req.Status))
	if err != nil {
		return attendance.MarkResult{}, err
	}

	return attendance.MarkResult{
		Record:  toResponse(att),
		Created: created,
	}, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}

	return responses, nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, attendance.ErrInvalidDate
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, parsed)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}

	return responses, nil
}

// Today implements attendance.AttendanceService. Every non-deleted employee is
// in the result; those without a record carry a nil status.
func (s *AttendanceServiceImpl) Today(ctx context.Context) ([]attendance.DailyRow, error) {
	today, _ := time.Parse(dateLayout, s.now().Format(dateLayout))

	rows, err := s.AttendanceRepository.ListDaily(ctx, today)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// DailySummary implements attendance.AttendanceService. Percentages cover only
// the statuses that actually occur on the date; with no records at all every
// known status reports "0%".
func (s *AttendanceServiceImpl) DailySummary(ctx context.Context, date string) (attendance.DailySummaryResponse, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return attendance.DailySummaryResponse{}, attendance.ErrInvalidDate
	}

	counts, err := s.AttendanceRepository.CountByStatus(ctx, parsed)
	if err != nil {
		return attendance.DailySummaryResponse{}, err
	}

	total := 0
	breakdown := make(map[string]int, len(counts))
	for status, count := range counts {
		total += count
		breakdown[string(status)] = count
	}

	percentages := make(map[string]string, len(attendance.ValidStatuses()))
	for _, status := range attendance.ValidStatuses() {
		count, ok := breakdown[status]
		if !ok || total == 0 {
			percentages[status] = "0%"
			continue
		}
		percentages[status] = fmt.Sprintf("%.2f%%", float64(count)*100/float64(total))
	}

	return attendance.DailySummaryResponse{
		Total:       total,
		Breakdown:   breakdown,
		Percentages: percentages,
	}, nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.AttendanceRepository.UpdateStatus(ctx, req.ID, attendance.Status(req.Status))
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.SoftDelete(ctx, id)
}
