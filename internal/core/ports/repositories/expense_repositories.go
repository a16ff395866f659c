package repositories

import (
	"context"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense. Returns apperrors.ErrNotFound if it does not exist.
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// ListExpenses retrieves every expense, latest expense date first.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense and returns it with its assigned ID.
	SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// UpdateExpense replaces all fields of an existing expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID int64) error

	// DetachClient clears the client reference of every expense pointing at clientID
	// and returns how many expenses changed.
	DetachClient(ctx context.Context, clientID int64) (int64, error)

	// ReplaceExpenses removes every expense and stores the given ones with their IDs.
	ReplaceExpenses(ctx context.Context, expenses []domain.Expense) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
