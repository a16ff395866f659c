package services

import (
	"context"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/SscSPs/business_hub_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	GetExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, req dto.ExpenseRequest) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID int64, req dto.ExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
