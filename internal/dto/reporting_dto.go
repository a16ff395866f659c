package dto

import (
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListPaymentsParams are the query parameters of the payment list.
type ListPaymentsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=Paid Unpaid Cancelled"`
}

// ListPaymentsResponse wraps the derived payments with their collected total.
type ListPaymentsResponse struct {
	Payments        []domain.PaymentView `json:"payments"`
	CollectedIncome decimal.Decimal      `json:"collectedIncome"`
}

// ListEmployeesResponse pairs the filtered employees with their statistics.
type ListEmployeesResponse struct {
	Employees []domain.Employee    `json:"employees"`
	Stats     domain.EmployeeStats `json:"stats"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
