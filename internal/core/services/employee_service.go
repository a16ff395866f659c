package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/utils/filtering"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service with the provided options
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, options ...ServiceOption) portssvc.EmployeeSvcFacade {
	return &employeeService{
		BaseService:  newBaseService(options...),
		employeeRepo: repo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (*domain.Employee, error) {
	employee := req.ToDomain()
	employee.ApplyDefaults(s.Today())
	if err := employee.Validate(); err != nil {
		s.notifyFailure(ctx, "employee.create", err)
		return nil, err
	}

	created, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		s.LogError(ctx, err, "Failed to save employee in repository")
		s.notifyFailure(ctx, "employee.create", err)
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created successfully", slog.Int64("employee_id", created.ID))
	s.Notify(ctx, domain.SeveritySuccess, "employee.create", "Employee added successfully.")
	return created, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee by ID in repository", slog.Int64("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees from repository")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return filtering.Employees(employees, filter), nil
}

// UpdateEmployee replaces all fields. An empty join date keeps the stored one.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.EmployeeRequest) (*domain.Employee, error) {
	existing, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load employee for update", slog.Int64("employee_id", employeeID))
		}
		s.notifyFailure(ctx, "employee.update", err)
		return nil, err
	}

	updated := req.ToDomain()
	updated.ID = existing.ID
	if updated.JoinDate.IsZero() {
		updated.JoinDate = existing.JoinDate
	}
	updated.ApplyDefaults(s.Today())
	if err := updated.Validate(); err != nil {
		s.notifyFailure(ctx, "employee.update", err)
		return nil, err
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, updated); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update employee in repository", slog.Int64("employee_id", employeeID))
		}
		s.notifyFailure(ctx, "employee.update", err)
		return nil, err
	}

	s.LogInfo(ctx, "Employee updated successfully", slog.Int64("employee_id", employeeID))
	s.Notify(ctx, domain.SeveritySuccess, "employee.update", "Employee updated successfully.")
	return &updated, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete employee", slog.Int64("employee_id", employeeID))
		}
		s.notifyFailure(ctx, "employee.delete", err)
		return err
	}

	s.LogInfo(ctx, "Employee deleted successfully", slog.Int64("employee_id", employeeID))
	s.Notify(ctx, domain.SeverityInfo, "employee.delete", "Employee deleted.")
	return nil
}
