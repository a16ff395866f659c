package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is the row shape of the clients table.
type Client struct {
	ClientID      int64           `db:"id"`
	ClientName    string          `db:"client_name"`
	CompanyName   string          `db:"company_name"`
	ContactInfo   string          `db:"contact_info"`
	ServiceName   string          `db:"service_name"`
	ServiceCost   decimal.Decimal `db:"service_cost"`
	AddedDate     time.Time       `db:"added_date"` // DATE column
	ProjectStatus string          `db:"project_status"`
	PaymentStatus string          `db:"payment_status"`
}
