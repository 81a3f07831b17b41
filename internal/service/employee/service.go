package employee

import (
	"context"
	"fmt"

	"github.com/gastrodesk/backoffice-api/internal/domain/employee"
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// ExpectedHours implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ExpectedHours(ctx context.Context, id string) (employee.ExpectedHoursResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.ExpectedHoursResponse{}, employee.ErrEmployeeNotFound
	}
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.ExpectedHoursResponse{}, err
	}

	resp := employee.NewExpectedHoursResponse(emp.WorkShift)
	resp.EmployeeID = emp.ID
	return resp, nil
}
