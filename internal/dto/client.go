package dto

import (
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClientRequest is the body of a client create or full update.
type ClientRequest struct {
	ClientName    string               `json:"client_name" binding:"required"`
	CompanyName   string               `json:"company_name"`
	ContactInfo   string               `json:"contact_info"`
	ServiceName   string               `json:"service_name"`
	ServiceCost   decimal.Decimal      `json:"service_cost" binding:"gte=0"`
	AddedDate     domain.Date          `json:"added_date"`
	ProjectStatus domain.ProjectStatus `json:"project_status" binding:"omitempty,oneof=Current Pending Completed Cancelled"`
	PaymentStatus domain.PaymentStatus `json:"payment_status" binding:"omitempty,oneof=Paid Unpaid"`
}

// ToDomain converts the request to a client without an ID.
func (r ClientRequest) ToDomain() domain.Client {
	return domain.Client{
		ClientName:    r.ClientName,
		CompanyName:   r.CompanyName,
		ContactInfo:   r.ContactInfo,
		ServiceName:   r.ServiceName,
		ServiceCost:   r.ServiceCost,
		AddedDate:     r.AddedDate,
		ProjectStatus: r.ProjectStatus,
		PaymentStatus: r.PaymentStatus,
	}
}

// ListClientsParams are the query parameters of the client list.
type ListClientsParams struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// ToFilter converts the params to a client filter.
func (p ListClientsParams) ToFilter() domain.ClientFilter {
	return domain.ClientFilter{Search: p.Search, Status: domain.ProjectStatus(p.Status)}
}
