package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the row shape of the expenses table.
type Expense struct {
	ExpenseID     int64           `db:"id"`
	ExpenseDate   time.Time       `db:"expense_date"`
	ExpenseDetail string          `db:"expense_detail"`
	Amount        decimal.Decimal `db:"amount"`
	ClientID      *int64          `db:"client_id"` // NULL for general expenses
}
