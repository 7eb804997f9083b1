package leave

import (
	"context"
	"testing"
	"time"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/leave"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepository struct {
	requests map[string]leave.LeaveRequest
}

func (f *fakeLeaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = "lr-" + req.EmployeeID
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepository) List(ctx context.Context, status string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if status == "" || string(req.Status) == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	req.Status = status
	f.requests[id] = req
	return req, nil
}

func (f *fakeLeaveRepository) SoftDelete(ctx context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

type fakeEmployeeRepository struct {
	employees map[string]employee.Employee
	syncCalls []string
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
	return nil, nil
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
	f.syncCalls = append(f.syncCalls, employeeID)
	return nil
}

func newTestService(t *testing.T) (leave.LeaveService, *fakeLeaveRepository, *fakeEmployeeRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	leaveRepo := &fakeLeaveRepository{requests: make(map[string]leave.LeaveRequest)}
	empRepo := &fakeEmployeeRepository{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Jane Doe", Status: employee.StatusActive},
	}}

	return NewLeaveService(mock, leaveRepo, empRepo), leaveRepo, empRepo, mock
}

func pendingRequest(repo *fakeLeaveRepository) string {
	req := leave.LeaveRequest{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		LeaveType:  "Annual",
		Reason:     "Vacation",
		StartDate:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}
	repo.requests[req.ID] = req
	return req.ID
}

func TestLeaveService_Create_StartsPending(t *testing.T) {
	t.Parallel()
	svc, _, empRepo, _ := newTestService(t)

	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Annual",
		Reason:     "Vacation",
		StartDate:  "2025-04-01",
		EndDate:    "2025-04-05",
	})

	require.NoError(t, err)
	assert.Equal(t, "Pending", resp.Status)
	assert.Empty(t, empRepo.syncCalls, "creating a request must not touch the employee status")
}

func TestLeaveService_Create_StartAfterEnd(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Annual",
		Reason:     "Vacation",
		StartDate:  "2025-04-05",
		EndDate:    "2025-04-01",
	})
	assert.Error(t, err)
}

func TestLeaveService_Create_UnknownEmployee(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "ghost",
		LeaveType:  "Annual",
		Reason:     "Vacation",
		StartDate:  "2025-04-01",
		EndDate:    "2025-04-05",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLeaveService_UpdateStatus_ApproveSyncsEmployee(t *testing.T) {
	t.Parallel()
	svc, leaveRepo, empRepo, mock := newTestService(t)
	id := pendingRequest(leaveRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{
		ID: id, Status: "Approved",
	})

	require.NoError(t, err)
	assert.Equal(t, "Approved", resp.Status)
	assert.Equal(t, []string{"emp-1"}, empRepo.syncCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveService_UpdateStatus_RepeatedTransitionAllowed(t *testing.T) {
	t.Parallel()
	svc, leaveRepo, empRepo, mock := newTestService(t)
	id := pendingRequest(leaveRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{ID: id, Status: "Approved"})
	require.NoError(t, err)

	// No current-state guard: approving again (or rejecting after approval)
	// goes through and re-runs the recompute.
	resp, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{ID: id, Status: "Rejected"})
	require.NoError(t, err)
	assert.Equal(t, "Rejected", resp.Status)
	assert.Equal(t, []string{"emp-1", "emp-1"}, empRepo.syncCalls)
}

func TestLeaveService_UpdateStatus_InvalidTarget(t *testing.T) {
	t.Parallel()
	svc, leaveRepo, _, _ := newTestService(t)
	id := pendingRequest(leaveRepo)

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{ID: id, Status: "Pending"})
	assert.Error(t, err, "Pending is not a valid transition target")
}

func TestLeaveService_UpdateStatus_NotFound(t *testing.T) {
	t.Parallel()
	svc, _, _, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{ID: "missing", Status: "Approved"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_Delete_SyncsEmployee(t *testing.T) {
	t.Parallel()
	svc, leaveRepo, empRepo, mock := newTestService(t)
	id := pendingRequest(leaveRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, []string{"emp-1"}, empRepo.syncCalls,
		"deleting a request must recompute the owner's status")
}
