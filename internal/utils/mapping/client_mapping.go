package mapping

import (
	"time"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/SscSPs/business_hub_app/internal/models"
)

// dateToTime converts a calendar date to midnight UTC. Absent or malformed dates give the zero time.
func dateToTime(d domain.Date) time.Time {
	t, _ := d.Time()
	return t
}

// timeToDate converts a DATE column value back to a calendar date.
func timeToDate(t time.Time) domain.Date {
	if t.IsZero() {
		return ""
	}
	return domain.Date(t.Format(domain.DateLayout))
}

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:      d.ID,
		ClientName:    d.ClientName,
		CompanyName:   d.CompanyName,
		ContactInfo:   d.ContactInfo,
		ServiceName:   d.ServiceName,
		ServiceCost:   d.ServiceCost,
		AddedDate:     dateToTime(d.AddedDate),
		ProjectStatus: string(d.ProjectStatus),
		PaymentStatus: string(d.PaymentStatus),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ID:            m.ClientID,
		ClientName:    m.ClientName,
		CompanyName:   m.CompanyName,
		ContactInfo:   m.ContactInfo,
		ServiceName:   m.ServiceName,
		ServiceCost:   m.ServiceCost,
		AddedDate:     timeToDate(m.AddedDate),
		ProjectStatus: domain.ProjectStatus(m.ProjectStatus),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
	}
}

// ToDomainClientSlice converts a slice of model Clients to a slice of domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
