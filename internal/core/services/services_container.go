package services

import (
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The options (clock, display location, notifier) are shared by every service.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	opts := append([]ServiceOption{WithLocation(cfg.DisplayLocation)}, options...)

	return &portssvc.ServiceContainer{
		Client:       NewClientService(repos.ClientRepo, repos.ExpenseRepo, repos.TxManager, opts...),
		Expense:      NewExpenseService(repos.ExpenseRepo, repos.ClientRepo, repos.TxManager, opts...),
		Employee:     NewEmployeeService(repos.EmployeeRepo, opts...),
		Payment:      NewPaymentService(repos.ClientRepo, opts...),
		Dashboard:    NewDashboardService(repos.ClientRepo, repos.ExpenseRepo, repos.EmployeeRepo, opts...),
		DataTransfer: NewDataTransferService(repos, opts...),
		Auth:         NewAuthService(cfg, opts...),
	}
}
