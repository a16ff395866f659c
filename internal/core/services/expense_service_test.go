package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/core/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	expenseRepo *MockExpenseRepository
	clientRepo  *MockClientRepository
	tx          *passthroughTx
	notifier    *recordingNotifier
	service     portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.expenseRepo = new(MockExpenseRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.tx = &passthroughTx{}
	suite.notifier = &recordingNotifier{}
	suite.service = services.NewExpenseService(suite.expenseRepo, suite.clientRepo, suite.tx,
		services.WithClock(fixedClock),
		services.WithLocation(time.UTC),
		services.WithNotifier(suite.notifier),
	)
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func int64Ptr(v int64) *int64 {
	return &v
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	req := dto.ExpenseRequest{ExpenseDate: "2024-03-02", ExpenseDetail: " Cloud Hosting ", Amount: amount(12000), ClientID: int64Ptr(101)}

	suite.clientRepo.On("FindClientByID", ctx, int64(101)).Return(&domain.Client{ID: 101}, nil).Once()
	suite.expenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ExpenseDetail == "Cloud Hosting" && e.IsLinkedTo(101) && e.Amount.Equal(decimal.NewFromInt(12000))
	})).Return(&domain.Expense{ID: 201}, nil).Once()

	created, err := suite.service.CreateExpense(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(201), created.ID)
	suite.Equal(1, suite.tx.calls, "client check and save share one transaction")
	suite.Equal("Expense added successfully.", suite.notifier.last().Message)
	suite.expenseRepo.AssertExpectations(suite.T())
	suite.clientRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ZeroAmountAllowed() {
	ctx := context.Background()
	suite.expenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(&domain.Expense{ID: 1}, nil).Once()

	_, err := suite.service.CreateExpense(ctx, dto.ExpenseRequest{ExpenseDate: "2024-03-02", ExpenseDetail: "Free", Amount: amount(0)})

	suite.Require().NoError(err)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Validation() {
	tests := []struct {
		name string
		req  dto.ExpenseRequest
	}{
		{name: "missing amount", req: dto.ExpenseRequest{ExpenseDate: "2024-03-02", ExpenseDetail: "x"}},
		{name: "missing detail", req: dto.ExpenseRequest{ExpenseDate: "2024-03-02", Amount: amount(1)}},
		{name: "missing date", req: dto.ExpenseRequest{ExpenseDetail: "x", Amount: amount(1)}},
		{name: "bad date", req: dto.ExpenseRequest{ExpenseDate: "03/02/2024", ExpenseDetail: "x", Amount: amount(1)}},
		{name: "negative amount", req: dto.ExpenseRequest{ExpenseDate: "2024-03-02", ExpenseDetail: "x", Amount: amount(-5)}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			created, err := suite.service.CreateExpense(context.Background(), tt.req)

			suite.Require().Error(err)
			suite.Nil(created)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Equal(domain.SeverityError, suite.notifier.last().Severity)
			suite.expenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
		})
	}
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnknownClient() {
	ctx := context.Background()
	suite.clientRepo.On("FindClientByID", ctx, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateExpense(ctx, dto.ExpenseRequest{
		ExpenseDate: "2024-03-02", ExpenseDetail: "x", Amount: amount(1), ClientID: int64Ptr(999),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.expenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_UnknownClientInTransaction() {
	ctx := context.Background()
	suite.expenseRepo.On("FindExpenseByID", ctx, int64(7)).Return(&domain.Expense{ID: 7}, nil).Once()
	suite.clientRepo.On("FindClientByID", ctx, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateExpense(ctx, 7, dto.ExpenseRequest{
		ExpenseDate: "2024-03-02", ExpenseDetail: "x", Amount: amount(1), ClientID: int64Ptr(999),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(1, suite.tx.calls)
	suite.expenseRepo.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NotFound() {
	ctx := context.Background()
	suite.expenseRepo.On("FindExpenseByID", ctx, int64(7)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateExpense(ctx, 7, dto.ExpenseRequest{ExpenseDate: "2024-03-02", ExpenseDetail: "x", Amount: amount(1)})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_ClearsClient() {
	ctx := context.Background()
	suite.expenseRepo.On("FindExpenseByID", ctx, int64(7)).Return(&domain.Expense{ID: 7, ClientID: int64Ptr(101)}, nil).Once()
	suite.expenseRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ID == 7 && e.ClientID == nil
	})).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, 7, dto.ExpenseRequest{ExpenseDate: "2024-03-02", ExpenseDetail: "x", Amount: amount(1)})

	suite.Require().NoError(err)
	suite.Nil(updated.ClientID)
	suite.Equal("Expense updated successfully.", suite.notifier.last().Message)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_AppliesFilter() {
	ctx := context.Background()
	suite.expenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{
		{ID: 2, ExpenseDate: "2024-03-02", ExpenseDetail: "Cloud", Amount: decimal.NewFromInt(12000)},
		{ID: 1, ExpenseDate: "2024-02-02", ExpenseDetail: "Tools", Amount: decimal.NewFromInt(100)},
	}, nil).Once()

	expenses, err := suite.service.ListExpenses(ctx, domain.ExpenseFilter{Min: "1000"})

	suite.Require().NoError(err)
	suite.Require().Len(expenses, 1)
	suite.Equal(int64(2), expenses[0].ID)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense() {
	ctx := context.Background()
	suite.expenseRepo.On("DeleteExpense", ctx, int64(3)).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteExpense(ctx, 3))
	suite.Equal("Expense deleted.", suite.notifier.last().Message)
}

// A client deleted inside the transaction the expense write joins is not accepted as a reference.
func TestCreateExpense_SeesClientDeletedInSameTransaction(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	svc := services.NewExpenseService(repos.ExpenseRepo, repos.ClientRepo, repos.TxManager, services.WithClock(fixedClock))

	client, err := repos.ClientRepo.SaveClient(ctx, domain.Client{ClientName: "Acme", ServiceCost: decimal.NewFromInt(1000)})
	require.NoError(t, err)

	err = repos.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := repos.ClientRepo.DeleteClient(txCtx, client.ID); err != nil {
			return err
		}
		_, err := svc.CreateExpense(txCtx, dto.ExpenseRequest{
			ExpenseDate: "2024-03-02", ExpenseDetail: "Hosting", Amount: amount(10), ClientID: int64Ptr(client.ID),
		})
		return err
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	expenses, err := repos.ExpenseRepo.ListExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
	_, err = repos.ClientRepo.FindClientByID(ctx, client.ID)
	assert.NoError(t, err, "the failed transaction leaves the client in place")
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
