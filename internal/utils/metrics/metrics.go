// Package metrics derives read-only aggregates from the record collections.
// All functions are pure: the same inputs (including now) give the same outputs.
package metrics

import (
	"time"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultMonthCount is the number of months shown in the dashboard charts.
const DefaultMonthCount = 6

// PaymentDueDays is the payment term applied to a client's added date.
const PaymentDueDays = 30

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// TotalIncome sums the service cost of every client regardless of payment status.
func TotalIncome(clients []domain.Client) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range clients {
		sum = sum.Add(c.ServiceCost)
	}
	return sum
}

// TotalExpenses sums every expense amount.
func TotalExpenses(expenses []domain.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// NetProfit is income minus expenses; it may be negative.
func NetProfit(income, expenses decimal.Decimal) decimal.Decimal {
	return income.Sub(expenses)
}

// CollectedIncome sums the payments whose derived status is Paid.
func CollectedIncome(payments []domain.PaymentView) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.Status == domain.PaymentViewPaid {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// StatusCounts counts clients per project status. An unset status counts as Current.
func StatusCounts(clients []domain.Client) map[domain.ProjectStatus]int {
	counts := make(map[domain.ProjectStatus]int)
	for _, c := range clients {
		status := c.ProjectStatus
		if status == "" {
			status = domain.ProjectCurrent
		}
		counts[status]++
	}
	return counts
}

// StatusDistribution returns one slice per known project status in display order,
// including zero counts.
func StatusDistribution(counts map[domain.ProjectStatus]int) []domain.StatusSlice {
	out := make([]domain.StatusSlice, 0, len(domain.ProjectStatuses))
	for _, s := range domain.ProjectStatuses {
		out = append(out, domain.StatusSlice{Name: s, Value: counts[s]})
	}
	return out
}

// MonthLabel is the short display name of a month.
func MonthLabel(m time.Month) string {
	return m.String()[:3]
}

// monthsBack returns year and month i months before now.
func monthsBack(now time.Time, i int) (int, time.Month) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	t := first.AddDate(0, -i, 0)
	return t.Year(), t.Month()
}

// MonthlySeries returns monthCount points ending at now's month, oldest first.
// Revenue sums service cost by added date; expenses sum amount by expense date.
func MonthlySeries(clients []domain.Client, expenses []domain.Expense, now time.Time, monthCount int) []domain.MonthlyPoint {
	if monthCount <= 0 {
		return []domain.MonthlyPoint{}
	}
	points := make([]domain.MonthlyPoint, 0, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		year, month := monthsBack(now, i)
		rev := decimal.Zero
		for _, c := range clients {
			if c.AddedDate.InMonth(year, month) {
				rev = rev.Add(c.ServiceCost)
			}
		}
		points = append(points, domain.MonthlyPoint{
			Month:    MonthLabel(month),
			Revenue:  rev,
			Expenses: expensesIn(expenses, year, month),
		})
	}
	return points
}

// ExpensesByMonth returns monthCount expense totals ending at now's month, oldest first.
func ExpensesByMonth(expenses []domain.Expense, now time.Time, monthCount int) []domain.ExpenseMonth {
	if monthCount <= 0 {
		return []domain.ExpenseMonth{}
	}
	out := make([]domain.ExpenseMonth, 0, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		year, month := monthsBack(now, i)
		out = append(out, domain.ExpenseMonth{Month: MonthLabel(month), Amount: expensesIn(expenses, year, month)})
	}
	return out
}

func expensesIn(expenses []domain.Expense, year int, month time.Month) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		if e.ExpenseDate.InMonth(year, month) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// SummarizeExpenses computes this month's and last month's totals and the
// average monthly expense over a twelve month year, rounded to an integer.
func SummarizeExpenses(expenses []domain.Expense, now time.Time) domain.ExpenseSummary {
	thisYear, thisMonth := monthsBack(now, 0)
	lastYear, lastMonth := monthsBack(now, 1)
	total := TotalExpenses(expenses)
	return domain.ExpenseSummary{
		ThisMonth:      expensesIn(expenses, thisYear, thisMonth),
		LastMonth:      expensesIn(expenses, lastYear, lastMonth),
		Total:          total,
		AverageMonthly: total.Div(twelve).Round(0),
	}
}

// SummarizeClients computes the client statistics card.
func SummarizeClients(clients []domain.Client) domain.ClientStats {
	total := TotalIncome(clients)
	stats := domain.ClientStats{
		ActiveClients:       len(clients),
		TotalRevenue:        total,
		AverageProjectValue: decimal.Zero,
	}
	if len(clients) > 0 {
		stats.AverageProjectValue = total.Div(decimal.NewFromInt(int64(len(clients)))).Round(0)
	}
	for _, c := range clients {
		payment := c.PaymentStatus
		if payment == "" {
			payment = domain.PaymentUnpaid
		}
		if payment == domain.PaymentUnpaid && c.ProjectStatus != domain.ProjectCancelled {
			stats.UnpaidInvoices++
		}
	}
	return stats
}

// SummarizeEmployees computes the employee statistics. An empty input yields all zeros.
func SummarizeEmployees(employees []domain.Employee) domain.EmployeeStats {
	n := len(employees)
	denominator := decimal.NewFromInt(int64(max(1, n)))

	salaries := decimal.Zero
	active := 0
	departments := make(map[string]struct{})
	for _, e := range employees {
		salaries = salaries.Add(e.Salary)
		departments[e.Department] = struct{}{}
		if e.Status == domain.EmployeeActive {
			active++
		}
	}

	rate := decimal.NewFromInt(int64(active)).Mul(hundred).Div(denominator).Round(0)
	return domain.EmployeeStats{
		Count:         n,
		AverageSalary: salaries.Div(denominator).Round(0),
		Departments:   len(departments),
		ActiveRate:    int(rate.IntPart()),
	}
}

// DerivePaymentStatus applies the payment rule: Completed projects are Paid,
// Cancelled projects are Cancelled, otherwise the client's payment status (default Unpaid).
func DerivePaymentStatus(c domain.Client) domain.PaymentViewStatus {
	switch c.ProjectStatus {
	case domain.ProjectCompleted:
		return domain.PaymentViewPaid
	case domain.ProjectCancelled:
		return domain.PaymentViewCancelled
	}
	if c.PaymentStatus == domain.PaymentPaid {
		return domain.PaymentViewPaid
	}
	return domain.PaymentViewUnpaid
}

// Payments derives one payment per client in client order. The due date is
// the added date plus the payment term, or today when the added date is unusable.
func Payments(clients []domain.Client, today domain.Date) []domain.PaymentView {
	out := make([]domain.PaymentView, 0, len(clients))
	for _, c := range clients {
		service := c.ServiceName
		if service == "" {
			service = "N/A"
		}
		due, ok := c.AddedDate.AddDays(PaymentDueDays)
		if !ok {
			due = today
		}
		out = append(out, domain.PaymentView{
			ID:      c.ID,
			Client:  c.ClientName,
			Service: service,
			Amount:  c.ServiceCost,
			Status:  DerivePaymentStatus(c),
			DueDate: due,
		})
	}
	return out
}
