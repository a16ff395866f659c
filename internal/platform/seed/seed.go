// Package seed provides the sample business data loaded into an empty store.
package seed

import (
	"time"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// monthsAgo returns day of the calendar month months before now, clamped to that month's length.
func monthsAgo(now time.Time, months, day int) domain.Date {
	first := time.Date(now.Year(), now.Month()-time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return domain.DateOf(first.AddDate(0, 0, day-1))
}

func clientRef(id int64) *int64 { return &id }

// SampleSnapshot returns the demo clients, expenses and employees with dates relative to now.
func SampleSnapshot(now time.Time) domain.Snapshot {
	return domain.Snapshot{
		Clients: []domain.Client{
			{ID: 101, ClientName: "Arjun Sharma", CompanyName: "Sharma Tech", ContactInfo: "arjun@example.com",
				ServiceName: "Web Development", ServiceCost: decimal.NewFromInt(180000), AddedDate: monthsAgo(now, 2, 5),
				ProjectStatus: domain.ProjectCurrent, PaymentStatus: domain.PaymentUnpaid},
			{ID: 102, ClientName: "Priya Verma", CompanyName: "Verma Designs", ContactInfo: "priya@example.com",
				ServiceName: "Branding", ServiceCost: decimal.NewFromInt(75000), AddedDate: monthsAgo(now, 5, 12),
				ProjectStatus: domain.ProjectCompleted, PaymentStatus: domain.PaymentPaid},
			{ID: 103, ClientName: "Karan Mehta", CompanyName: "Mehta Foods", ContactInfo: "karan@example.com",
				ServiceName: "eCommerce Setup", ServiceCost: decimal.NewFromInt(220000), AddedDate: monthsAgo(now, 1, 15),
				ProjectStatus: domain.ProjectPending, PaymentStatus: domain.PaymentUnpaid},
			{ID: 104, ClientName: "Anita Singh", CompanyName: "Singh Realty", ContactInfo: "anita@example.com",
				ServiceName: "SEO & Content", ServiceCost: decimal.NewFromInt(98000), AddedDate: monthsAgo(now, 3, 22),
				ProjectStatus: domain.ProjectCancelled, PaymentStatus: domain.PaymentUnpaid},
			{ID: 105, ClientName: "Rahul Jain", CompanyName: "RJ Finserve", ContactInfo: "rahul@example.com",
				ServiceName: "Mobile App", ServiceCost: decimal.NewFromInt(310000), AddedDate: monthsAgo(now, 0, 3),
				ProjectStatus: domain.ProjectCurrent, PaymentStatus: domain.PaymentUnpaid},
		},
		Expenses: []domain.Expense{
			{ID: 201, ExpenseDate: monthsAgo(now, 0, 2), ExpenseDetail: "Cloud Hosting", Amount: decimal.NewFromInt(12000), ClientID: clientRef(101)},
			{ID: 202, ExpenseDate: monthsAgo(now, 1, 18), ExpenseDetail: "Design Tools Subscription", Amount: decimal.NewFromInt(4200)},
			{ID: 203, ExpenseDate: monthsAgo(now, 2, 12), ExpenseDetail: "Domain Renewals", Amount: decimal.NewFromInt(3200)},
			{ID: 204, ExpenseDate: monthsAgo(now, 3, 9), ExpenseDetail: "QA Devices", Amount: decimal.NewFromInt(26500), ClientID: clientRef(105)},
			{ID: 205, ExpenseDate: monthsAgo(now, 5, 24), ExpenseDetail: "Marketing Campaign", Amount: decimal.NewFromInt(18500), ClientID: clientRef(103)},
		},
		Employees: []domain.Employee{
			{ID: 301, EmployeeName: "Neha Gupta", Position: "Frontend Engineer", Department: "Development",
				Salary: decimal.NewFromInt(780000), JoinDate: monthsAgo(now, 14, 1), Status: domain.EmployeeActive, ContactInfo: "neha.g@example.com"},
			{ID: 302, EmployeeName: "Vikram Rao", Position: "UI/UX Designer", Department: "Design",
				Salary: decimal.NewFromInt(690000), JoinDate: monthsAgo(now, 8, 13), Status: domain.EmployeeActive, ContactInfo: "vikram.r@example.com"},
			{ID: 303, EmployeeName: "Aisha Khan", Position: "Marketing Manager", Department: "Marketing",
				Salary: decimal.NewFromInt(720000), JoinDate: monthsAgo(now, 20, 7), Status: domain.EmployeeOnLeave, ContactInfo: "aisha.k@example.com"},
			{ID: 304, EmployeeName: "Rohan Patel", Position: "Sales Executive", Department: "Sales",
				Salary: decimal.NewFromInt(540000), JoinDate: monthsAgo(now, 5, 5), Status: domain.EmployeeContract, ContactInfo: "rohan.p@example.com"},
		},
	}
}
