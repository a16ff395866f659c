package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/SscSPs/business_hub_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()
	clientRepo := new(MockClientRepository)
	expenseRepo := new(MockExpenseRepository)
	employeeRepo := new(MockEmployeeRepository)

	clientRepo.On("ListClients", ctx).Return([]domain.Client{
		{ID: 2, ServiceCost: decimal.NewFromInt(500), AddedDate: "2024-02-10", ProjectStatus: domain.ProjectPending, PaymentStatus: domain.PaymentUnpaid},
		{ID: 1, ServiceCost: decimal.NewFromInt(1000), AddedDate: "2024-03-01", ProjectStatus: domain.ProjectCompleted, PaymentStatus: domain.PaymentUnpaid},
	}, nil)
	expenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{
		{ID: 1, ExpenseDate: "2024-03-05", Amount: decimal.NewFromInt(200)},
	}, nil)

	svc := services.NewDashboardService(clientRepo, expenseRepo, employeeRepo,
		services.WithClock(fixedClock), services.WithLocation(time.UTC))

	dashboard, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	m := dashboard.Metrics
	assert.True(t, decimal.NewFromInt(1500).Equal(m.TotalIncome))
	assert.True(t, decimal.NewFromInt(1000).Equal(m.CollectedIncome))
	assert.True(t, decimal.NewFromInt(200).Equal(m.TotalExpenses))
	assert.True(t, decimal.NewFromInt(1300).Equal(m.NetProfit))
	assert.Equal(t, 1, m.PendingProjects)
	assert.Equal(t, 1, m.CompletedProjects)
	assert.Equal(t, 0, m.CurrentProjects)

	require.Len(t, dashboard.MonthlySeries, 6)
	assert.Equal(t, "Mar", dashboard.MonthlySeries[5].Month)
	assert.True(t, decimal.NewFromInt(1000).Equal(dashboard.MonthlySeries[5].Revenue))
	assert.True(t, decimal.NewFromInt(500).Equal(dashboard.MonthlySeries[4].Revenue))
	require.Len(t, dashboard.StatusPie, 4)
	require.Len(t, dashboard.ExpenseSeries, 6)
	assert.True(t, decimal.NewFromInt(200).Equal(dashboard.ExpenseSummary.ThisMonth))
	assert.Equal(t, 2, dashboard.ClientStats.ActiveClients)
	// Unpaid counts the stored payment status, so the completed client is included.
	assert.Equal(t, 2, dashboard.ClientStats.UnpaidInvoices)
}

func TestGetDashboard_StoreError(t *testing.T) {
	ctx := context.Background()
	clientRepo := new(MockClientRepository)
	clientRepo.On("ListClients", ctx).Return(nil, assert.AnError)

	svc := services.NewDashboardService(clientRepo, new(MockExpenseRepository), new(MockEmployeeRepository))

	_, err := svc.GetDashboard(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetEmployeeStats_Filtered(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(MockEmployeeRepository)
	employeeRepo.On("ListEmployees", ctx).Return([]domain.Employee{
		{ID: 1, Department: "Design", Salary: decimal.NewFromInt(600), Status: domain.EmployeeActive},
		{ID: 2, Department: "Design", Salary: decimal.NewFromInt(400), Status: domain.EmployeeOnLeave},
		{ID: 3, Department: "Sales", Salary: decimal.NewFromInt(900), Status: domain.EmployeeActive},
	}, nil)

	svc := services.NewDashboardService(new(MockClientRepository), new(MockExpenseRepository), employeeRepo)

	stats, err := svc.GetEmployeeStats(ctx, domain.EmployeeFilter{Department: "Design"})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.True(t, decimal.NewFromInt(500).Equal(stats.AverageSalary))
	assert.Equal(t, 1, stats.Departments)
	assert.Equal(t, 50, stats.ActiveRate)

	empty, err := svc.GetEmployeeStats(ctx, domain.EmployeeFilter{Department: "HR"})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, 0, empty.ActiveRate)
}

func TestListPayments_StatusFilter(t *testing.T) {
	ctx := context.Background()
	clientRepo := new(MockClientRepository)
	clientRepo.On("ListClients", ctx).Return([]domain.Client{
		{ID: 3, ClientName: "A", ProjectStatus: domain.ProjectCancelled, PaymentStatus: domain.PaymentUnpaid},
		{ID: 2, ClientName: "B", ProjectStatus: domain.ProjectCurrent, PaymentStatus: domain.PaymentPaid},
		{ID: 1, ClientName: "C", ProjectStatus: domain.ProjectPending, PaymentStatus: domain.PaymentUnpaid},
	}, nil)

	svc := services.NewPaymentService(clientRepo, services.WithClock(fixedClock))

	all, err := svc.ListPayments(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	paid, err := svc.ListPayments(ctx, domain.PaymentViewPaid)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, int64(2), paid[0].ID)

	cancelled, err := svc.ListPayments(ctx, domain.PaymentViewCancelled)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, int64(3), cancelled[0].ID)
}
