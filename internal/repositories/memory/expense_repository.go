package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
)

// ExpenseRepository stores expenses in a Store.
type ExpenseRepository struct {
	store *Store
}

var _ portsrepo.ExpenseRepositoryFacade = (*ExpenseRepository)(nil)

func (r *ExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	var (
		expense domain.Expense
		ok      bool
	)
	r.store.read(ctx, func(st *state) {
		expense, ok = st.expenses[expenseID]
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return copyExpense(expense), nil
}

// ListExpenses returns every expense by expense date, latest first, then by id.
func (r *ExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	var expenses []domain.Expense
	r.store.read(ctx, func(st *state) {
		expenses = make([]domain.Expense, 0, len(st.expenses))
		for _, e := range st.expenses {
			expenses = append(expenses, *copyExpense(e))
		}
	})
	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].ExpenseDate != expenses[j].ExpenseDate {
			return expenses[i].ExpenseDate > expenses[j].ExpenseDate
		}
		return expenses[i].ID > expenses[j].ID
	})
	return expenses, nil
}

func (r *ExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	err := r.store.write(ctx, func(st *state) error {
		expense.ID = st.nextExpenseID
		st.nextExpenseID++
		st.expenses[expense.ID] = *copyExpense(expense)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.expenses[expense.ID]; !ok {
			return apperrors.ErrNotFound
		}
		st.expenses[expense.ID] = *copyExpense(expense)
		return nil
	})
}

func (r *ExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.expenses[expenseID]; !ok {
			return apperrors.ErrNotFound
		}
		delete(st.expenses, expenseID)
		return nil
	})
}

func (r *ExpenseRepository) DetachClient(ctx context.Context, clientID int64) (int64, error) {
	var detached int64
	err := r.store.write(ctx, func(st *state) error {
		for id, e := range st.expenses {
			if e.IsLinkedTo(clientID) {
				e.ClientID = nil
				st.expenses[id] = e
				detached++
			}
		}
		return nil
	})
	return detached, err
}

func (r *ExpenseRepository) ReplaceExpenses(ctx context.Context, expenses []domain.Expense) error {
	return r.store.write(ctx, func(st *state) error {
		replaced := make(map[int64]domain.Expense, len(expenses))
		for _, e := range expenses {
			if _, dup := replaced[e.ID]; dup {
				return fmt.Errorf("%w: expense id %d", apperrors.ErrDuplicate, e.ID)
			}
			replaced[e.ID] = *copyExpense(e)
		}
		st.expenses = replaced
		st.nextExpenseID = nextIDAfter(replaced)
		return nil
	})
}

// copyExpense detaches the client reference pointer from the caller's value.
func copyExpense(e domain.Expense) *domain.Expense {
	if e.ClientID != nil {
		id := *e.ClientID
		e.ClientID = &id
	}
	return &e
}
