package mapping

import (
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/SscSPs/business_hub_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ID,
		ExpenseDate:   dateToTime(d.ExpenseDate),
		ExpenseDetail: d.ExpenseDetail,
		Amount:        d.Amount,
		ClientID:      d.ClientID,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ID:            m.ExpenseID,
		ExpenseDate:   timeToDate(m.ExpenseDate),
		ExpenseDetail: m.ExpenseDetail,
		Amount:        m.Amount,
		ClientID:      m.ClientID,
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
