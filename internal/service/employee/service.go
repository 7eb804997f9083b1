package employee

import (
	"context"
	"time"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
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

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.Status(req.Status)
	if req.Status == "" {
		status = employee.StatusActive
	}

	emp, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:          req.FullName,
		Position:          req.Position,
		Department:        req.Department,
		Salary:            *req.Salary,
		EmploymentHistory: req.EmploymentHistory,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		ProfileImage:      req.ProfileImage,
		Status:            status,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := current.Status
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	emp, err := s.EmployeeRepository.Update(ctx, employee.Employee{
		ID:                req.ID,
		FullName:          req.FullName,
		Position:          req.Position,
		Department:        req.Department,
		Salary:            *req.Salary,
		EmploymentHistory: req.EmploymentHistory,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		ProfileImage:      req.ProfileImage,
		Status:            status,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.SoftDelete(ctx, id)
}
