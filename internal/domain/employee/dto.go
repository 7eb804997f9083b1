package employee

import (
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID                string          `json:"id"`
	FullName          string          `json:"full_name"`
	Position          string          `json:"position"`
	Department        string          `json:"department"`
	Salary            decimal.Decimal `json:"salary"`
	EmploymentHistory string          `json:"employment_history,omitempty"`
	Email             string          `json:"email"`
	PhoneNumber       string          `json:"phone_number"`
	ProfileImage      string          `json:"profile_image,omitempty"`
	Status            string          `json:"status"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

type CreateEmployeeRequest struct {
	FullName          string           `json:"full_name"`
	Position          string           `json:"position"`
	Department        string           `json:"department"`
	Salary            *decimal.Decimal `json:"salary"`
	EmploymentHistory string           `json:"employment_history"`
	Email             string           `json:"email"`
	PhoneNumber       string           `json:"phone_number"`
	ProfileImage      string           `json:"profile_image"`
	Status            string           `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if r.Salary == nil {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary is required"})
	} else if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if validator.IsEmpty(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "phone_number is required"})
	}
	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Active or On Leave"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FullName          string           `json:"full_name"`
	Position          string           `json:"position"`
	Department        string           `json:"department"`
	Salary            *decimal.Decimal `json:"salary"`
	EmploymentHistory string           `json:"employment_history"`
	Email             string           `json:"email"`
	PhoneNumber       string           `json:"phone_number"`
	ProfileImage      string           `json:"profile_image"`
	Status            string           `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		FullName:    r.FullName,
		Position:    r.Position,
		Department:  r.Department,
		Salary:      r.Salary,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Status:      r.Status,
	}
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if err := create.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
