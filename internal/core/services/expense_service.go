package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/utils/filtering"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	clientRepo  portsrepo.ClientReader
	txManager   portsrepo.TransactionManager
}

// NewExpenseService creates a new expense service with the provided options
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, clientRepo portsrepo.ClientReader, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: newBaseService(options...),
		expenseRepo: expenseRepo,
		clientRepo:  clientRepo,
		txManager:   txManager,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// build converts and checks the request without touching the store.
func (s *expenseService) build(req dto.ExpenseRequest) (domain.Expense, error) {
	if req.Amount == nil {
		return domain.Expense{}, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	expense := req.ToDomain()
	expense.ApplyDefaults()
	if err := expense.Validate(); err != nil {
		return domain.Expense{}, err
	}
	return expense, nil
}

// checkClient requires a client reference to point at a stored client. It must run
// in the same transaction as the write so a concurrent client delete cannot slip in between.
func (s *expenseService) checkClient(ctx context.Context, expense domain.Expense) error {
	if expense.ClientID == nil {
		return nil
	}
	if _, err := s.clientRepo.FindClientByID(ctx, *expense.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: client %d does not exist", apperrors.ErrValidation, *expense.ClientID)
		}
		return fmt.Errorf("failed to check expense client: %w", err)
	}
	return nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.ExpenseRequest) (*domain.Expense, error) {
	expense, err := s.build(req)
	if err != nil {
		s.notifyFailure(ctx, "expense.create", err)
		return nil, err
	}

	var created *domain.Expense
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkClient(txCtx, expense); err != nil {
			return err
		}
		saved, err := s.expenseRepo.SaveExpense(txCtx, expense)
		if err != nil {
			return fmt.Errorf("failed to save expense: %w", err)
		}
		created = saved
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save expense in repository")
		}
		s.notifyFailure(ctx, "expense.create", err)
		return nil, err
	}

	s.LogInfo(ctx, "Expense created successfully", slog.Int64("expense_id", created.ID))
	s.Notify(ctx, domain.SeveritySuccess, "expense.create", "Expense added successfully.")
	return created, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense by ID in repository", slog.Int64("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses from repository")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return filtering.Expenses(expenses, filter), nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID int64, req dto.ExpenseRequest) (*domain.Expense, error) {
	if _, err := s.expenseRepo.FindExpenseByID(ctx, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load expense for update", slog.Int64("expense_id", expenseID))
		}
		s.notifyFailure(ctx, "expense.update", err)
		return nil, err
	}

	expense, err := s.build(req)
	if err != nil {
		s.notifyFailure(ctx, "expense.update", err)
		return nil, err
	}
	expense.ID = expenseID

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkClient(txCtx, expense); err != nil {
			return err
		}
		return s.expenseRepo.UpdateExpense(txCtx, expense)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update expense in repository", slog.Int64("expense_id", expenseID))
		}
		s.notifyFailure(ctx, "expense.update", err)
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated successfully", slog.Int64("expense_id", expenseID))
	s.Notify(ctx, domain.SeveritySuccess, "expense.update", "Expense updated successfully.")
	return &expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID int64) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.Int64("expense_id", expenseID))
		}
		s.notifyFailure(ctx, "expense.delete", err)
		return err
	}

	s.LogInfo(ctx, "Expense deleted successfully", slog.Int64("expense_id", expenseID))
	s.Notify(ctx, domain.SeverityInfo, "expense.delete", "Expense deleted.")
	return nil
}
