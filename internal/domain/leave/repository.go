package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List returns all non-deleted requests, optionally filtered by status
	// (empty string means all).
	List(ctx context.Context, status string) ([]LeaveRequest, error)

	UpdateStatus(ctx context.Context, id string, status Status) (LeaveRequest, error)
	SoftDelete(ctx context.Context, id string) error
}
