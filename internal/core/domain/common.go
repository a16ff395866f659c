package domain

import "time"

// Snapshot is the complete business state: the three stored collections.
type Snapshot struct {
	Clients   []Client   `json:"clients"`
	Expenses  []Expense  `json:"expenses"`
	Employees []Employee `json:"employees"`
}

// IsEmpty reports whether all collections are empty.
func (s Snapshot) IsEmpty() bool {
	return len(s.Clients) == 0 && len(s.Expenses) == 0 && len(s.Employees) == 0
}

// ExportDocument is the JSON document produced by an export.
type ExportDocument struct {
	Snapshot
	ExportedAt time.Time `json:"exportedAt"`
}

// Filename is the suggested download name of the document.
func (d ExportDocument) Filename() string {
	return "businesshub-export-" + d.ExportedAt.Format(DateLayout) + ".json"
}

// ImportResult reports which collections an import replaced and their new sizes.
// A nil count means the collection was left untouched.
type ImportResult struct {
	Clients   *int `json:"clients,omitempty"`
	Expenses  *int `json:"expenses,omitempty"`
	Employees *int `json:"employees,omitempty"`
}

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a user-facing message about the outcome of an action.
type Notification struct {
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	Action   string    `json:"action,omitempty"`
	At       time.Time `json:"at"`
}
