package review

import (
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/validator"
)

type ReviewResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	ReviewDate   string `json:"review_date"`
	Reviewer     string `json:"reviewer"`
	Rating       string `json:"rating"`
	Comments     string `json:"comments,omitempty"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	FullName     string `json:"full_name"`
	Position     string `json:"position"`
	Department   string `json:"department"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type CreateReviewRequest struct {
	EmployeeID string `json:"employee_id"`
	ReviewDate string `json:"review_date"`
	Reviewer   string `json:"reviewer"`
	Rating     string `json:"rating"`
	Comments   string `json:"comments"`
	Category   string `json:"category"`
	Status     string `json:"status"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.ReviewDate) {
		errs = append(errs, validator.ValidationError{Field: "review_date", Message: "review_date is required"})
	} else if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "review_date", Message: "review_date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Reviewer) {
		errs = append(errs, validator.ValidationError{Field: "reviewer", Message: "reviewer is required"})
	}
	if validator.IsEmpty(r.Rating) {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating is required"})
	} else if !validator.IsInSlice(r.Rating, ValidRatings()) {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating must be one of: Excellent, Good, Average, Poor"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category is required"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateReviewRequest struct {
	ID string `json:"-"`
	CreateReviewRequest
}

func (r *UpdateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if err := r.CreateReviewRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateReviewEmployeeRequest creates a minimal employee record from the
// review screen; everything except the name is defaulted.
type CreateReviewEmployeeRequest struct {
	FullName          string `json:"full_name"`
	Department        string `json:"department"`
	Position          string `json:"position"`
	ProfileImage      string `json:"profile_image"`
	Salary            string `json:"salary"`
	EmploymentHistory string `json:"employment_history"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phone_number"`
}

func (r *CreateReviewEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
