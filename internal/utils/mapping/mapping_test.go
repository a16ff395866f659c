package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/SscSPs/business_hub_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClientMapping(t *testing.T) {
	client := domain.Client{
		ID: 101, ClientName: "Arjun Sharma", CompanyName: "Sharma Tech", ServiceName: "Web Development",
		ServiceCost: decimal.NewFromInt(180000), AddedDate: "2024-01-05",
		ProjectStatus: domain.ProjectCurrent, PaymentStatus: domain.PaymentUnpaid,
	}

	model := mapping.ToModelClient(client)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), model.AddedDate)
	assert.Equal(t, "Current", model.ProjectStatus)

	assert.Equal(t, client, mapping.ToDomainClient(model))
}

func TestExpenseMapping_NullClient(t *testing.T) {
	expense := domain.Expense{ID: 202, ExpenseDate: "2024-02-18", ExpenseDetail: "Tools", Amount: decimal.NewFromInt(4200)}

	model := mapping.ToModelExpense(expense)
	assert.Nil(t, model.ClientID)
	assert.Equal(t, expense, mapping.ToDomainExpense(model))
}

func TestEmployeeMapping_ZeroDate(t *testing.T) {
	got := mapping.ToDomainEmployee(mapping.ToModelEmployee(domain.Employee{ID: 1, Status: domain.EmployeeContract}))
	assert.Equal(t, domain.Date(""), got.JoinDate)
	assert.Equal(t, domain.EmployeeContract, got.Status)
}
