package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle state of a client's project.
type ProjectStatus string

const (
	ProjectCurrent   ProjectStatus = "Current"
	ProjectPending   ProjectStatus = "Pending"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectCancelled ProjectStatus = "Cancelled"
)

// ProjectStatuses lists every project status in display order.
var ProjectStatuses = []ProjectStatus{ProjectCurrent, ProjectPending, ProjectCompleted, ProjectCancelled}

// IsValid reports whether s is a known project status.
func (s ProjectStatus) IsValid() bool {
	for _, known := range ProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// PaymentStatus is whether a client has paid for the service.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "Paid"
	PaymentUnpaid PaymentStatus = "Unpaid"
)

// IsValid reports whether s is a known payment status.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentPaid || s == PaymentUnpaid
}

// Client is a customer of the business and the single source of payment data.
type Client struct {
	ID            int64           `json:"id"`
	ClientName    string          `json:"client_name"`
	CompanyName   string          `json:"company_name"`
	ContactInfo   string          `json:"contact_info"`
	ServiceName   string          `json:"service_name"`
	ServiceCost   decimal.Decimal `json:"service_cost"`
	AddedDate     Date            `json:"added_date"`
	ProjectStatus ProjectStatus   `json:"project_status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
}

// ApplyDefaults fills unset fields: added today, project Current, payment Unpaid.
func (c *Client) ApplyDefaults(today Date) {
	c.ClientName = strings.TrimSpace(c.ClientName)
	if c.AddedDate.IsZero() {
		c.AddedDate = today
	}
	c.AddedDate = c.AddedDate.Normalized()
	if c.ProjectStatus == "" {
		c.ProjectStatus = ProjectCurrent
	}
	if c.PaymentStatus == "" {
		c.PaymentStatus = PaymentUnpaid
	}
}

// Validate checks required fields and enum values.
func (c Client) Validate() error {
	if c.ClientName == "" {
		return fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}
	if c.ServiceCost.IsNegative() {
		return fmt.Errorf("%w: service cost must not be negative", apperrors.ErrValidation)
	}
	if !c.AddedDate.IsZero() && !c.AddedDate.Valid() {
		return fmt.Errorf("%w: invalid added date %q", apperrors.ErrValidation, c.AddedDate)
	}
	if !c.ProjectStatus.IsValid() {
		return fmt.Errorf("%w: unknown project status %q", apperrors.ErrValidation, c.ProjectStatus)
	}
	if !c.PaymentStatus.IsValid() {
		return fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, c.PaymentStatus)
	}
	return nil
}

// MarkPaid records payment. A Pending project becomes Current; Completed and
// Cancelled projects keep their status.
func (c *Client) MarkPaid() {
	c.PaymentStatus = PaymentPaid
	if c.ProjectStatus == ProjectPending {
		c.ProjectStatus = ProjectCurrent
	}
}
