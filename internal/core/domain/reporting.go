package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentViewStatus is the status shown for a derived payment.
type PaymentViewStatus string

const (
	PaymentViewPaid      PaymentViewStatus = "Paid"
	PaymentViewUnpaid    PaymentViewStatus = "Unpaid"
	PaymentViewCancelled PaymentViewStatus = "Cancelled"
)

// PaymentView is a payment derived from a client record. It is never stored.
type PaymentView struct {
	ID      int64             `json:"id"` // same as the client ID
	Client  string            `json:"client"`
	Service string            `json:"service"`
	Amount  decimal.Decimal   `json:"amount"`
	Status  PaymentViewStatus `json:"status"`
	DueDate Date              `json:"dueDate"`
}

// MonthlyPoint is one month of the revenue/expense line chart.
type MonthlyPoint struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// ExpenseMonth is one bar of the monthly expense chart.
type ExpenseMonth struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amt"`
}

// StatusSlice is one slice of the project status pie.
type StatusSlice struct {
	Name  ProjectStatus `json:"name"`
	Value int           `json:"value"`
}

// DashboardMetrics holds the headline metric cards.
type DashboardMetrics struct {
	// TotalIncome is booked income: the sum of every client's service cost.
	TotalIncome decimal.Decimal `json:"totalIncome"`
	// CollectedIncome sums only payments whose derived status is Paid.
	CollectedIncome   decimal.Decimal `json:"collectedIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	CurrentProjects   int             `json:"currentProjects"`
	PendingProjects   int             `json:"pendingProjects"`
	CompletedProjects int             `json:"completedProjects"`
	CancelledProjects int             `json:"cancelledProjects"`
}

// ClientStats is the client statistics card.
type ClientStats struct {
	ActiveClients       int             `json:"activeClients"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	AverageProjectValue decimal.Decimal `json:"averageProjectValue"`
	UnpaidInvoices      int             `json:"unpaidInvoices"`
}

// EmployeeStats summarises a (usually filtered) set of employees.
type EmployeeStats struct {
	Count         int             `json:"count"`
	AverageSalary decimal.Decimal `json:"averageSalary"`
	Departments   int             `json:"departments"`
	ActiveRate    int             `json:"activeRate"` // percent, 0-100
}

// ExpenseSummary is the expense aside on the expenses page.
type ExpenseSummary struct {
	ThisMonth      decimal.Decimal `json:"thisMonth"`
	LastMonth      decimal.Decimal `json:"lastMonth"`
	Total          decimal.Decimal `json:"total"`
	AverageMonthly decimal.Decimal `json:"averageMonthly"`
}

// Dashboard is the full view-model of the dashboard page.
type Dashboard struct {
	Metrics        DashboardMetrics `json:"metrics"`
	MonthlySeries  []MonthlyPoint   `json:"monthlySeries"`
	StatusPie      []StatusSlice    `json:"statusPie"`
	ExpenseSeries  []ExpenseMonth   `json:"expenseSeries"`
	ExpenseSummary ExpenseSummary   `json:"expenseSummary"`
	ClientStats    ClientStats      `json:"clientStats"`
}
