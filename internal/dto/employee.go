package dto

import (
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeeRequest is the body of an employee create or full update.
type EmployeeRequest struct {
	EmployeeName string                `json:"employee_name" binding:"required"`
	Position     string                `json:"position" binding:"required"`
	Department   string                `json:"department"`
	Salary       decimal.Decimal       `json:"salary" binding:"gte=0"`
	JoinDate     domain.Date           `json:"join_date"`
	Status       domain.EmployeeStatus `json:"status" binding:"omitempty,oneof=Active 'On Leave' Contract Terminated"`
	ContactInfo  string                `json:"contact_info"`
}

// ToDomain converts the request to an employee without an ID.
func (r EmployeeRequest) ToDomain() domain.Employee {
	return domain.Employee{
		EmployeeName: r.EmployeeName,
		Position:     r.Position,
		Department:   r.Department,
		Salary:       r.Salary,
		JoinDate:     r.JoinDate,
		Status:       r.Status,
		ContactInfo:  r.ContactInfo,
	}
}

// ListEmployeesParams are the query parameters of the employee list and stats.
type ListEmployeesParams struct {
	Search     string `form:"search"`
	Department string `form:"department"`
	Status     string `form:"status"`
}

// ToFilter converts the params to an employee filter.
func (p ListEmployeesParams) ToFilter() domain.EmployeeFilter {
	return domain.EmployeeFilter{
		Search:     p.Search,
		Department: p.Department,
		Status:     domain.EmployeeStatus(p.Status),
	}
}
