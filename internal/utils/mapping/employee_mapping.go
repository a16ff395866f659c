package mapping

import (
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/SscSPs/business_hub_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:   d.ID,
		EmployeeName: d.EmployeeName,
		Position:     d.Position,
		Department:   d.Department,
		Salary:       d.Salary,
		JoinDate:     dateToTime(d.JoinDate),
		Status:       string(d.Status),
		ContactInfo:  d.ContactInfo,
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		ID:           m.EmployeeID,
		EmployeeName: m.EmployeeName,
		Position:     m.Position,
		Department:   m.Department,
		Salary:       m.Salary,
		JoinDate:     timeToDate(m.JoinDate),
		Status:       domain.EmployeeStatus(m.Status),
		ContactInfo:  m.ContactInfo,
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to a slice of domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
