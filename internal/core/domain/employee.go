package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EmployeeStatus is the employment state of an employee.
type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "Active"
	EmployeeOnLeave    EmployeeStatus = "On Leave"
	EmployeeContract   EmployeeStatus = "Contract"
	EmployeeTerminated EmployeeStatus = "Terminated"
)

// EmployeeStatuses lists every employee status in display order.
var EmployeeStatuses = []EmployeeStatus{EmployeeActive, EmployeeOnLeave, EmployeeContract, EmployeeTerminated}

// IsValid reports whether s is a known employee status.
func (s EmployeeStatus) IsValid() bool {
	for _, known := range EmployeeStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// DefaultDepartment is assigned to employees created without one.
const DefaultDepartment = "Development"

// Departments are the departments offered when creating an employee.
// Other values are accepted.
var Departments = []string{"Development", "Design", "Marketing", "Sales", "HR", "Finance"}

// Employee is a member of staff.
type Employee struct {
	ID           int64           `json:"id"`
	EmployeeName string          `json:"employee_name"`
	Position     string          `json:"position"`
	Department   string          `json:"department"`
	Salary       decimal.Decimal `json:"salary"`
	JoinDate     Date            `json:"join_date"`
	Status       EmployeeStatus  `json:"status"`
	ContactInfo  string          `json:"contact_info"`
}

// ApplyDefaults fills unset fields: department Development, joined today, status Active.
func (e *Employee) ApplyDefaults(today Date) {
	e.EmployeeName = strings.TrimSpace(e.EmployeeName)
	e.Position = strings.TrimSpace(e.Position)
	if e.Department == "" {
		e.Department = DefaultDepartment
	}
	if e.JoinDate.IsZero() {
		e.JoinDate = today
	}
	e.JoinDate = e.JoinDate.Normalized()
	if e.Status == "" {
		e.Status = EmployeeActive
	}
}

// Validate checks required fields and enum values.
func (e Employee) Validate() error {
	if e.EmployeeName == "" {
		return fmt.Errorf("%w: employee name is required", apperrors.ErrValidation)
	}
	if e.Position == "" {
		return fmt.Errorf("%w: position is required", apperrors.ErrValidation)
	}
	if e.Salary.IsNegative() {
		return fmt.Errorf("%w: salary must not be negative", apperrors.ErrValidation)
	}
	if !e.JoinDate.IsZero() && !e.JoinDate.Valid() {
		return fmt.Errorf("%w: invalid join date %q", apperrors.ErrValidation, e.JoinDate)
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("%w: unknown employee status %q", apperrors.ErrValidation, e.Status)
	}
	return nil
}
