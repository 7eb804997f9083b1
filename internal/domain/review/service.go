package review

import (
	"context"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
)

type ReviewService interface {
	List(ctx context.Context) ([]ReviewResponse, error)
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	Update(ctx context.Context, req UpdateReviewRequest) (ReviewResponse, error)
	Delete(ctx context.Context, id string) error

	Employees(ctx context.Context) ([]employee.EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateReviewEmployeeRequest) (employee.EmployeeResponse, error)
}
