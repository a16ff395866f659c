package domain_test

import (
	"testing"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClient_ApplyDefaults(t *testing.T) {
	c := domain.Client{ClientName: "  Arjun Sharma "}
	c.ApplyDefaults("2024-05-10")

	assert.Equal(t, "Arjun Sharma", c.ClientName)
	assert.Equal(t, domain.Date("2024-05-10"), c.AddedDate)
	assert.Equal(t, domain.ProjectCurrent, c.ProjectStatus)
	assert.Equal(t, domain.PaymentUnpaid, c.PaymentStatus)
	assert.True(t, c.ServiceCost.IsZero())
}

func TestClient_ApplyDefaultsKeepsSetFields(t *testing.T) {
	c := domain.Client{
		ClientName:    "Priya",
		AddedDate:     "2024-01-02T10:00:00Z",
		ProjectStatus: domain.ProjectCompleted,
		PaymentStatus: domain.PaymentPaid,
	}
	c.ApplyDefaults("2024-05-10")

	assert.Equal(t, domain.Date("2024-01-02"), c.AddedDate)
	assert.Equal(t, domain.ProjectCompleted, c.ProjectStatus)
	assert.Equal(t, domain.PaymentPaid, c.PaymentStatus)
}

func TestClient_Validate(t *testing.T) {
	valid := domain.Client{
		ClientName:    "Karan",
		ServiceCost:   decimal.NewFromInt(1000),
		AddedDate:     "2024-03-01",
		ProjectStatus: domain.ProjectPending,
		PaymentStatus: domain.PaymentUnpaid,
	}

	tests := []struct {
		name    string
		mutate  func(c *domain.Client)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *domain.Client) {}, wantErr: false},
		{name: "empty name", mutate: func(c *domain.Client) { c.ClientName = "" }, wantErr: true},
		{name: "negative cost", mutate: func(c *domain.Client) { c.ServiceCost = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "bad date", mutate: func(c *domain.Client) { c.AddedDate = "03/01/2024" }, wantErr: true},
		{name: "unknown project status", mutate: func(c *domain.Client) { c.ProjectStatus = "Paused" }, wantErr: true},
		{name: "unknown payment status", mutate: func(c *domain.Client) { c.PaymentStatus = "Pending" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_MarkPaid(t *testing.T) {
	tests := []struct {
		name        string
		status      domain.ProjectStatus
		wantProject domain.ProjectStatus
	}{
		{name: "pending is promoted", status: domain.ProjectPending, wantProject: domain.ProjectCurrent},
		{name: "current stays current", status: domain.ProjectCurrent, wantProject: domain.ProjectCurrent},
		{name: "completed untouched", status: domain.ProjectCompleted, wantProject: domain.ProjectCompleted},
		{name: "cancelled untouched", status: domain.ProjectCancelled, wantProject: domain.ProjectCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.Client{ProjectStatus: tt.status, PaymentStatus: domain.PaymentUnpaid}
			c.MarkPaid()
			assert.Equal(t, domain.PaymentPaid, c.PaymentStatus)
			assert.Equal(t, tt.wantProject, c.ProjectStatus)
		})
	}
}
