package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/attendance"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepository struct {
	records map[string]attendance.Attendance // keyed by employeeID+date
	counts  map[attendance.Status]int
	daily   []attendance.DailyRow
}

func (f *fakeAttendanceRepository) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepository) Upsert(ctx context.Context, employeeID string, date time.Time, status attendance.Status) (attendance.Attendance, bool, error) {
	k := f.key(employeeID, date)
	existing, ok := f.records[k]
	if ok {
		existing.Status = status
		f.records[k] = existing
		return existing, false, nil
	}
	att := attendance.Attendance{ID: "att-" + k, EmployeeID: employeeID, Date: date, Status: status}
	f.records[k] = att
	return att, true, nil
}

func (f *fakeAttendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, att)
	}
	return out, nil
}

func (f *fakeAttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.Date.Equal(date) {
			out = append(out, att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepository) ListDaily(ctx context.Context, date time.Time) ([]attendance.DailyRow, error) {
	return f.daily, nil
}

func (f *fakeAttendanceRepository) CountByStatus(ctx context.Context, date time.Time) (map[attendance.Status]int, error) {
	return f.counts, nil
}

func (f *fakeAttendanceRepository) UpdateStatus(ctx context.Context, id string, status attendance.Status) error {
	for k, att := range f.records {
		if att.ID == id {
			att.Status = status
			f.records[k] = att
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepository) SoftDelete(ctx context.Context, id string) error {
	for k, att := range f.records {
		if att.ID == id {
			delete(f.records, k)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

type fakeEmployeeRepository struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepository) SoftDelete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepository) SyncLeaveStatus(ctx context.Context, employeeID string) error {
	return nil
}

func newTestService() (attendance.AttendanceService, *fakeAttendanceRepository) {
	attRepo := &fakeAttendanceRepository{
		records: make(map[string]attendance.Attendance),
		counts:  make(map[attendance.Status]int),
	}
	empRepo := &fakeEmployeeRepository{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Jane Doe"},
	}}
	return NewAttendanceService(attRepo, empRepo), attRepo
}

func TestAttendanceService_Mark_CreatesThenUpdates(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2025-03-10", Status: "Present",
	})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "Present", first.Record.Status)

	second, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2025-03-10", Status: "Late",
	})
	require.NoError(t, err)
	assert.False(t, second.Created, "a repeat mark for the same day must update, not create")
	assert.Equal(t, "Late", second.Record.Status)
	assert.Equal(t, first.Record.ID, second.Record.ID)
}

func TestAttendanceService_Mark_UnknownEmployee(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "ghost", Date: "2025-03-10", Status: "Present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Mark_InvalidStatus(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2025-03-10", Status: "Sleeping",
	})
	assert.Error(t, err)
}

func TestAttendanceService_DailySummary(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()
	repo.counts = map[attendance.Status]int{
		attendance.StatusPresent: 3,
		attendance.StatusLate:    1,
	}

	summary, err := svc.DailySummary(context.Background(), "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 3, summary.Breakdown["Present"])
	assert.Equal(t, "75.00%", summary.Percentages["Present"])
	assert.Equal(t, "25.00%", summary.Percentages["Late"])
	assert.Equal(t, "0%", summary.Percentages["Absent"])
}

func TestAttendanceService_DailySummary_Empty(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	summary, err := svc.DailySummary(context.Background(), "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Total)
	for _, status := range attendance.ValidStatuses() {
		assert.Equal(t, "0%", summary.Percentages[status])
	}
}

func TestAttendanceService_DailySummary_BadDate(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.DailySummary(context.Background(), "10-03-2025")
	assert.ErrorIs(t, err, attendance.ErrInvalidDate)
}
