package leave

import "time"

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string
	Reason     string
	StartDate  time.Time
	EndDate    time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined employee display fields
	EmployeeName string
	ProfileImage string
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// TransitionTargets are the statuses the update endpoint accepts. There is no
// current-state guard: re-approving or re-rejecting a processed request is
// allowed and the employee status recompute keeps the outcome consistent.
func TransitionTargets() []string {
	return []string{string(StatusApproved), string(StatusRejected)}
}
