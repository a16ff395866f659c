package services

import (
	"context"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/SscSPs/business_hub_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID int64, req dto.EmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
