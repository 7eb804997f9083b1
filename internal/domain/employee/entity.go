package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	FullName          string
	Position          string
	Department        string
	Salary            decimal.Decimal
	EmploymentHistory string
	Email             string
	PhoneNumber       string
	ProfileImage      string
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Status is derived from the leave workflow: an employee is On Leave while
// at least one non-deleted Approved leave request exists for them.
type Status string

const (
	StatusActive  Status = "Active"
	StatusOnLeave Status = "On Leave"
)

func ValidStatuses() []string {
	return []string{string(StatusActive), string(StatusOnLeave)}
}
