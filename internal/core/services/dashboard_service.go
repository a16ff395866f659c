package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/utils/filtering"
	"github.com/SscSPs/business_hub_app/internal/utils/metrics"
)

// dashboardService assembles the dashboard view-models from the current records.
// Nothing is cached; each call reads the stores again.
type dashboardService struct {
	BaseService
	clientRepo   portsrepo.ClientReader
	expenseRepo  portsrepo.ExpenseReader
	employeeRepo portsrepo.EmployeeReader
}

// NewDashboardService creates a new dashboard service with the provided options
func NewDashboardService(
	clientRepo portsrepo.ClientReader,
	expenseRepo portsrepo.ExpenseReader,
	employeeRepo portsrepo.EmployeeReader,
	options ...ServiceOption,
) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService:  newBaseService(options...),
		clientRepo:   clientRepo,
		expenseRepo:  expenseRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients for dashboard")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses for dashboard")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	now := s.Now()
	income := metrics.TotalIncome(clients)
	spent := metrics.TotalExpenses(expenses)
	counts := metrics.StatusCounts(clients)
	payments := metrics.Payments(clients, domain.DateOf(now))

	dashboard := &domain.Dashboard{
		Metrics: domain.DashboardMetrics{
			TotalIncome:       income,
			CollectedIncome:   metrics.CollectedIncome(payments),
			TotalExpenses:     spent,
			NetProfit:         metrics.NetProfit(income, spent),
			CurrentProjects:   counts[domain.ProjectCurrent],
			PendingProjects:   counts[domain.ProjectPending],
			CompletedProjects: counts[domain.ProjectCompleted],
			CancelledProjects: counts[domain.ProjectCancelled],
		},
		MonthlySeries:  metrics.MonthlySeries(clients, expenses, now, metrics.DefaultMonthCount),
		StatusPie:      metrics.StatusDistribution(counts),
		ExpenseSeries:  metrics.ExpensesByMonth(expenses, now, metrics.DefaultMonthCount),
		ExpenseSummary: metrics.SummarizeExpenses(expenses, now),
		ClientStats:    metrics.SummarizeClients(clients),
	}

	s.LogDebug(ctx, "Dashboard assembled",
		slog.Int("clients", len(clients)),
		slog.Int("expenses", len(expenses)),
		slog.String("net_profit", dashboard.Metrics.NetProfit.String()))
	return dashboard, nil
}

func (s *dashboardService) GetClientStats(ctx context.Context) (*domain.ClientStats, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients for stats")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	stats := metrics.SummarizeClients(clients)
	return &stats, nil
}

func (s *dashboardService) GetEmployeeStats(ctx context.Context, filter domain.EmployeeFilter) (*domain.EmployeeStats, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for stats")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	stats := metrics.SummarizeEmployees(filtering.Employees(employees, filter))
	return &stats, nil
}

func (s *dashboardService) GetExpenseSummary(ctx context.Context) (*domain.ExpenseSummary, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses for summary")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	summary := metrics.SummarizeExpenses(expenses, s.Now())
	return &summary, nil
}
