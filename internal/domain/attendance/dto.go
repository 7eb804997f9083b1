package attendance

import (
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Date       string `json:"date"`
	Status     string `json:"attendance_status"`
}

// DailyRow is one employee in the "today" view. Status and Date are nil for
// employees with no record on that date.
type DailyRow struct {
	EmployeeID   string  `json:"employee_id"`
	FullName     string  `json:"full_name"`
	Position     string  `json:"position"`
	Department   string  `json:"department"`
	ProfileImage string  `json:"profile_image,omitempty"`
	Status       *string `json:"attendance_status"`
	Date         *string `json:"date"`
}

type DailySummaryResponse struct {
	Total       int               `json:"total"`
	Breakdown   map[string]int    `json:"breakdown"`
	Percentages map[string]string `json:"percentages"`
}

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"attendance_status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "attendance_status", Message: "attendance_status is required"})
	} else if !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{Field: "attendance_status", Message: "attendance_status must be one of: Present, Absent, Late"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID     string `json:"-"`
	Status string `json:"attendance_status"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "attendance_status", Message: "attendance_status is required"})
	} else if !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{Field: "attendance_status", Message: "attendance_status must be one of: Present, Absent, Late"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkResult carries the record plus whether the mark created a new row; the
// handler picks the confirmation message from the flag.
type MarkResult struct {
	Record  AttendanceResponse `json:"record"`
	Created bool               `json:"created"`
}
