// Package filtering selects subsets of the record collections.
// Every function returns a new slice in the input order and never mutates its input.
package filtering

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Clients returns the clients matching f. Text search covers name, company, service and contact.
func Clients(clients []domain.Client, f domain.ClientFilter) []domain.Client {
	term := normalizeTerm(f.Search)
	return keep(clients, func(c domain.Client) bool {
		return matchesText(term, c.ClientName, c.CompanyName, c.ServiceName, c.ContactInfo) &&
			(f.Status == "" || c.ProjectStatus == f.Status)
	})
}

// Expenses returns the expenses matching f. Date and amount bounds are inclusive.
func Expenses(expenses []domain.Expense, f domain.ExpenseFilter) []domain.Expense {
	term := normalizeTerm(f.Search)
	from, hasFrom := parseDateBound(f.From)
	to, hasTo := parseDateBound(f.To)
	minAmt, hasMin := parseAmountBound(f.Min)
	maxAmt, hasMax := parseAmountBound(f.Max)

	return keep(expenses, func(e domain.Expense) bool {
		if !matchesText(term, e.ExpenseDetail) {
			return false
		}
		if hasFrom || hasTo {
			d, ok := e.ExpenseDate.Time()
			if !ok {
				return false
			}
			if hasFrom && d.Before(from) {
				return false
			}
			if hasTo && d.After(to) {
				return false
			}
		}
		if f.ClientID != "" && clientRef(e.ClientID) != f.ClientID {
			return false
		}
		if hasMin && e.Amount.LessThan(minAmt) {
			return false
		}
		if hasMax && e.Amount.GreaterThan(maxAmt) {
			return false
		}
		return true
	})
}

// Employees returns the employees matching f. Text search covers name, position, department and contact.
func Employees(employees []domain.Employee, f domain.EmployeeFilter) []domain.Employee {
	term := normalizeTerm(f.Search)
	return keep(employees, func(e domain.Employee) bool {
		return matchesText(term, e.EmployeeName, e.Position, e.Department, e.ContactInfo) &&
			(f.Department == "" || e.Department == f.Department) &&
			(f.Status == "" || e.Status == f.Status)
	})
}

func keep[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// matchesText expects an already normalized term. An empty term matches.
func matchesText(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func clientRef(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func parseDateBound(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	return domain.Date(s).Time()
}

func parseAmountBound(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
