package review

import (
	"context"
	"time"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/review"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type ReviewServiceImpl struct {
	review.ReviewRepository
	employee.EmployeeRepository
}

func NewReviewService(
	reviewRepository review.ReviewRepository,
	employeeRepository employee.EmployeeRepository,
) review.ReviewService {
	return &ReviewServiceImpl{
		ReviewRepository:   reviewRepository,
		EmployeeRepository: employeeRepository,
	}
}

func toResponse(rev review.PerformanceReview) review.ReviewResponse {
	return review.ReviewResponse{
		ID:           rev.ID,
		EmployeeID:   rev.EmployeeID,
		ReviewDate:   rev.ReviewDate.Format(dateLayout),
		Reviewer:     rev.Reviewer,
		Rating:       string(rev.Rating),
		Comments:     rev.Comments,
		Category:     rev.Category,
		Status:       rev.Status,
		FullName:     rev.EmployeeName,
		Position:     rev.EmployeePosition,
		Department:   rev.EmployeeDepartment,
		ProfileImage: rev.ProfileImage,
	}
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                emp.ID,
		FullName:          emp.FullName,
		Position:          emp.Position,
		Department:        emp.Department,
		Salary:            emp.Salary,
		EmploymentHistory: emp.EmploymentHistory,
		Email:             emp.Email,
		PhoneNumber:       emp.PhoneNumber,
		ProfileImage:      emp.ProfileImage,
		Status:            string(emp.Status),
		CreatedAt:         emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         emp.UpdatedAt.Format(time.RFC3339),
	}
}

// List implements review.ReviewService.
func (s *ReviewServiceImpl) List(ctx context.Context) ([]review.ReviewResponse, error) {
	reviews, err := s.ReviewRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]review.ReviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		responses = append(responses, toResponse(rev))
	}

	return responses, nil
}

// Create implements review.ReviewService.
func (s *ReviewServiceImpl) Create(ctx context.Context, req review.CreateReviewRequest) (review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return review.ReviewResponse{}, err
	}

	reviewDate, _ := time.Parse(dateLayout, req.ReviewDate)
	created, err := s.ReviewRepository.Create(ctx, review.PerformanceReview{
		EmployeeID: req.EmployeeID,
		ReviewDate: reviewDate,
		Reviewer:   req.Reviewer,
		Rating:     review.Rating(req.Rating),
		Comments:   req.Comments,
		Category:   req.Category,
		Status:     req.Status,
	})
	if err != nil {
		return review.ReviewResponse{}, err
	}

	return toResponse(created), nil
}

// Update implements review.ReviewService.
func (s *ReviewServiceImpl) Update(ctx context.Context, req review.UpdateReviewRequest) (review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	reviewDate, _ := time.Parse(dateLayout, req.ReviewDate)
	if err := s.ReviewRepository.Update(ctx, review.PerformanceReview{
		ID:         req.ID,
		ReviewDate: reviewDate,
		Reviewer:   req.Reviewer,
		Rating:     review.Rating(req.Rating),
		Comments:   req.Comments,
		Category:   req.Category,
		Status:     req.Status,
	}); err != nil {
		return review.ReviewResponse{}, err
	}

	updated, err := s.ReviewRepository.GetByID(ctx, req.ID)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	return toResponse(updated), nil
}

// Delete implements review.ReviewService.
func (s *ReviewServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ReviewRepository.SoftDelete(ctx, id)
}

// Employees implements review.ReviewService.
func (s *ReviewServiceImpl) Employees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	return responses, nil
}

// CreateEmployee implements review.ReviewService. The review screen only needs
// a name; everything else defaults so the picker can be filled on the spot.
func (s *ReviewServiceImpl) CreateEmployee(ctx context.Context, req review.CreateReviewEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	salary := decimal.Zero
	if req.Salary != "" {
		parsed, err := decimal.NewFromString(req.Salary)
		if err == nil && !parsed.IsNegative() {
			salary = parsed
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:          req.FullName,
		Position:          req.Position,
		Department:        req.Department,
		Salary:            salary,
		EmploymentHistory: req.EmploymentHistory,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		ProfileImage:      req.ProfileImage,
		Status:            employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}
