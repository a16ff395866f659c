package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	"github.com/SscSPs/business_hub_app/internal/models"
	"github.com/SscSPs/business_hub_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `id, expense_date, expense_detail, amount, client_id`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(&m.ExpenseID, &m.ExpenseDate, &m.ExpenseDetail, &m.Amount, &m.ClientID)
	return m, err
}

// SaveExpense inserts a new expense and returns it with the generated id.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_date, expense_detail, amount, client_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + expenseColumns

	saved, err := scanExpense(r.db(ctx).QueryRow(ctx, query, m.ExpenseDate, m.ExpenseDetail, m.Amount, m.ClientID))
	if err != nil {
		return nil, fmt.Errorf("failed to insert expense: %w", err)
	}
	d := mapping.ToDomainExpense(saved)
	return &d, nil
}

// FindExpenseByID retrieves an expense by id.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	m, err := scanExpense(r.db(ctx).QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %d: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// ListExpenses retrieves all expenses, latest expense date first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY expense_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

// UpdateExpense overwrites every column of an existing expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET expense_date = $2, expense_detail = $3, amount = $4, client_id = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db(ctx).Exec(ctx, query, m.ExpenseID, m.ExpenseDate, m.ExpenseDetail, m.Amount, m.ClientID)
	if err != nil {
		return fmt.Errorf("failed to update expense %d: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense row.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM expenses WHERE id = $1`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DetachClient clears client_id on every expense linked to clientID.
func (r *PgxExpenseRepository) DetachClient(ctx context.Context, clientID int64) (int64, error) {
	tag, err := r.db(ctx).Exec(ctx, `UPDATE expenses SET client_id = NULL, updated_at = now() WHERE client_id = $1`, clientID)
	if err != nil {
		return 0, fmt.Errorf("failed to detach expenses from client %d: %w", clientID, err)
	}
	return tag.RowsAffected(), nil
}

// ReplaceExpenses deletes every expense and inserts the given ones with their ids.
func (r *PgxExpenseRepository) ReplaceExpenses(ctx context.Context, expenses []domain.Expense) error {
	q := r.db(ctx)
	if _, err := q.Exec(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("failed to clear expenses: %w", err)
	}

	batch := &pgx.Batch{}
	for _, e := range expenses {
		m := mapping.ToModelExpense(e)
		batch.Queue(`INSERT INTO expenses (`+expenseColumns+`) VALUES ($1, $2, $3, $4, $5)`,
			m.ExpenseID, m.ExpenseDate, m.ExpenseDetail, m.Amount, m.ClientID)
	}
	if err := sendInserts(ctx, q, batch); err != nil {
		return fmt.Errorf("failed to insert expenses: %w", err)
	}
	return resetSequence(ctx, q, "expenses")
}
