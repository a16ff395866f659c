package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the row shape of the employees table.
type Employee struct {
	EmployeeID   int64           `db:"id"`
	EmployeeName string          `db:"employee_name"`
	Position     string          `db:"position"`
	Department   string          `db:"department"`
	Salary       decimal.Decimal `db:"salary"`
	JoinDate     time.Time       `db:"join_date"`
	Status       string          `db:"status"`
	ContactInfo  string          `db:"contact_info"`
}
