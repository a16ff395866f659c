package dto

import (
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseRequest is the body of an expense create or full update.
type ExpenseRequest struct {
	ExpenseDate   domain.Date      `json:"expense_date" binding:"required"`
	ExpenseDetail string           `json:"expense_detail" binding:"required"`
	Amount        *decimal.Decimal `json:"amount" binding:"required,gte=0"`
	ClientID      *int64           `json:"expense_client_id"`
}

// ToDomain converts the request to an expense without an ID.
// A missing amount becomes zero; callers reject it before converting.
func (r ExpenseRequest) ToDomain() domain.Expense {
	e := domain.Expense{
		ExpenseDate:   r.ExpenseDate,
		ExpenseDetail: r.ExpenseDetail,
		ClientID:      r.ClientID,
	}
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	return e
}

// ListExpensesParams are the query parameters of the expense list.
type ListExpensesParams struct {
	Search   string `form:"search"`
	From     string `form:"from"`
	To       string `form:"to"`
	ClientID string `form:"clientId"`
	Min      string `form:"min"`
	Max      string `form:"max"`
}

// ToFilter converts the params to an expense filter.
func (p ListExpensesParams) ToFilter() domain.ExpenseFilter {
	return domain.ExpenseFilter{
		Search:   p.Search,
		From:     p.From,
		To:       p.To,
		ClientID: p.ClientID,
		Min:      p.Min,
		Max:      p.Max,
	}
}
