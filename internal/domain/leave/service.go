package leave

import "context"

type LeaveService interface {
	List(ctx context.Context, status string) ([]LeaveRequestResponse, error)
	Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// UpdateStatus transitions the request and, in the same transaction,
	// recomputes the owning employee's Active / On Leave status.
	UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveRequestResponse, error)

	// Delete soft-deletes the request and re-runs the same recompute, so an
	// employee whose last Approved leave is removed returns to Active.
	Delete(ctx context.Context, id string) error
}
