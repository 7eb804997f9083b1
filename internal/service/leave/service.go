package leave

import (
	"context"
	"time"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/leave"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/database"
	"github.com/hr-staff/hr-staff-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

const dateLayout = "2006-01-02"

type LeaveServiceImpl struct {
	db database.TxStarter
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	db database.TxStarter,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
	}
}

func toResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		LeaveType:    req.LeaveType,
		Reason:       req.Reason,
		StartDate:    req.StartDate.Format(dateLayout),
		EndDate:      req.EndDate.Format(dateLayout),
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    req.UpdatedAt.Format("2006-01-02 15:04:05"),
		FullName:     req.EmployeeName,
		ProfileImage: req.ProfileImage,
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, status string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.List(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}

	return responses, nil
}

// Create implements leave.LeaveService. New requests always start out Pending;
// the employee's status is untouched until an approval happens.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		Reason:     req.Reason,
		StartDate:  start,
		EndDate:    end,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(created), nil
}

// UpdateStatus implements leave.LeaveService. The transition and the employee
// status recompute commit together; a reader can never observe an Approved
// request whose owner still shows Active.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var updated leave.LeaveRequest
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		updated, err = s.LeaveRequestRepository.UpdateStatus(txCtx, req.ID, leave.Status(req.Status))
		if err != nil {
			return err
		}

		return s.EmployeeRepository.SyncLeaveStatus(txCtx, updated.EmployeeID)
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(updated), nil
}

// Delete implements leave.LeaveService. Removing an Approved request can flip
// its employee back to Active, so the recompute runs in the same transaction.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	req, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.LeaveRequestRepository.SoftDelete(txCtx, id); err != nil {
			return err
		}

		return s.EmployeeRepository.SyncLeaveStatus(txCtx, req.EmployeeID)
	})
}
