package attendance

import "time"

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined employee display fields
	EmployeeName       string
	EmployeePosition   string
	EmployeeDepartment string
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
)

func ValidStatuses() []string {
	return []string{string(StatusPresent), string(StatusAbsent), string(StatusLate)}
}
