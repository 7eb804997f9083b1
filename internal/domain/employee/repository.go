package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	SoftDelete(ctx context.Context, id string) error

	// SyncLeaveStatus recomputes the employee's status from the leave ledger
	// in a single statement: On Leave iff any non-deleted Approved leave
	// request exists, else Active.
	SyncLeaveStatus(ctx context.Context, employeeID string) error
}
