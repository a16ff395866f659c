package domain

// ClientFilter selects clients. Zero values match everything.
type ClientFilter struct {
	Search string
	Status ProjectStatus
}

// ExpenseFilter selects expenses. Bounds are kept as the raw strings the user
// typed; malformed bounds are ignored.
type ExpenseFilter struct {
	Search   string
	From     string
	To       string
	ClientID string
	Min      string
	Max      string
}

// EmployeeFilter selects employees. Zero values match everything.
type EmployeeFilter struct {
	Search     string
	Department string
	Status     EmployeeStatus
}
