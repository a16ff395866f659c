package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Expense is money spent by the business, optionally attributed to a client.
type Expense struct {
	ID            int64           `json:"id"`
	ExpenseDate   Date            `json:"expense_date"`
	ExpenseDetail string          `json:"expense_detail"`
	Amount        decimal.Decimal `json:"amount"`
	// ClientID is nil for general expenses.
	ClientID *int64 `json:"expense_client_id"`
}

// ApplyDefaults normalizes the expense before validation.
func (e *Expense) ApplyDefaults() {
	e.ExpenseDetail = strings.TrimSpace(e.ExpenseDetail)
	e.ExpenseDate = e.ExpenseDate.Normalized()
}

// Validate checks required fields.
func (e Expense) Validate() error {
	if e.ExpenseDetail == "" {
		return fmt.Errorf("%w: expense detail is required", apperrors.ErrValidation)
	}
	if e.ExpenseDate.IsZero() {
		return fmt.Errorf("%w: expense date is required", apperrors.ErrValidation)
	}
	if !e.ExpenseDate.Valid() {
		return fmt.Errorf("%w: invalid expense date %q", apperrors.ErrValidation, e.ExpenseDate)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// IsLinkedTo reports whether the expense references the given client.
func (e Expense) IsLinkedTo(clientID int64) bool {
	return e.ClientID != nil && *e.ClientID == clientID
}
