package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name   string
		date   domain.Date
		days   int
		want   domain.Date
		wantOK bool
	}{
		{name: "within month", date: "2024-03-01", days: 30, want: "2024-03-31", wantOK: true},
		{name: "across year", date: "2023-12-15", days: 30, want: "2024-01-14", wantOK: true},
		{name: "leap day", date: "2024-02-28", days: 1, want: "2024-02-29", wantOK: true},
		{name: "timestamp input", date: "2024-03-01T23:30:00Z", days: 1, want: "2024-03-02", wantOK: true},
		{name: "empty", date: "", days: 30, want: "", wantOK: false},
		{name: "garbage", date: "not-a-date", days: 30, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.date.AddDays(tt.days)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_InMonth(t *testing.T) {
	d := domain.Date("2024-03-31")
	assert.True(t, d.InMonth(2024, time.March))
	assert.False(t, d.InMonth(2024, time.April))
	assert.False(t, d.InMonth(2023, time.March))
	assert.False(t, domain.Date("").InMonth(2024, time.March))
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC on the 9th is already the 10th in IST.
	now := time.Date(2024, time.May, 9, 20, 0, 0, 0, time.UTC).In(loc)
	assert.Equal(t, domain.Date("2024-05-10"), domain.DateOf(now))
}

func TestEmployee_DefaultsAndValidate(t *testing.T) {
	e := domain.Employee{EmployeeName: "Neha", Position: "Engineer"}
	e.ApplyDefaults("2024-05-10")

	assert.Equal(t, domain.DefaultDepartment, e.Department)
	assert.Equal(t, domain.EmployeeActive, e.Status)
	assert.Equal(t, domain.Date("2024-05-10"), e.JoinDate)
	assert.NoError(t, e.Validate())

	e.Position = ""
	assert.ErrorIs(t, e.Validate(), apperrors.ErrValidation)
}

func TestExpense_Validate(t *testing.T) {
	e := domain.Expense{ExpenseDate: "2024-05-01", ExpenseDetail: "Hosting", Amount: decimal.NewFromInt(10)}
	assert.NoError(t, e.Validate())

	missingDate := e
	missingDate.ExpenseDate = ""
	assert.ErrorIs(t, missingDate.Validate(), apperrors.ErrValidation)

	missingDetail := e
	missingDetail.ExpenseDetail = ""
	assert.ErrorIs(t, missingDetail.Validate(), apperrors.ErrValidation)

	negative := e
	negative.Amount = decimal.NewFromInt(-5)
	assert.ErrorIs(t, negative.Validate(), apperrors.ErrValidation)
}
