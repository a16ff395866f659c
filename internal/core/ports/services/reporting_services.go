package services

import (
	"context"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
)

// PaymentSvc exposes the payments derived from client records.
type PaymentSvc interface {
	// ListPayments derives the payment of every client. An empty status returns all of them.
	ListPayments(ctx context.Context, status domain.PaymentViewStatus) ([]domain.PaymentView, error)
}

// DashboardSvc assembles the view-models of the dashboard pages. Every call
// recomputes its result from the current records.
type DashboardSvc interface {
	// GetDashboard builds the dashboard page: metric cards and chart series.
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)

	// GetClientStats builds the client statistics card.
	GetClientStats(ctx context.Context) (*domain.ClientStats, error)

	// GetEmployeeStats summarises the employees matching the filter.
	GetEmployeeStats(ctx context.Context, filter domain.EmployeeFilter) (*domain.EmployeeStats, error)

	// GetExpenseSummary builds the expense aside.
	GetExpenseSummary(ctx context.Context) (*domain.ExpenseSummary, error)
}
