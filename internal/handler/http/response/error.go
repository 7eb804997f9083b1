package response

import (
	"errors"
	"net/http"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/attendance"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/auth"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/leave"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/payroll"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/review"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/user"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll entry not found")

	// Review domain errors
	case errors.Is(err, review.ErrReviewNotFound):
		NotFound(w, "Performance review not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
