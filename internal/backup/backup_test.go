package backup_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/business_hub_app/internal/backup"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportDoc() domain.ExportDocument {
	return domain.ExportDocument{
		Snapshot: domain.Snapshot{
			Clients:   []domain.Client{{ID: 101, ClientName: "Arjun Sharma", ServiceCost: decimal.NewFromInt(180000)}},
			Expenses:  []domain.Expense{{ID: 201, ExpenseDetail: "Cloud Hosting", Amount: decimal.RequireFromString("12000.50")}},
			Employees: []domain.Employee{{ID: 301, EmployeeName: "Rohit Verma", Salary: decimal.NewFromInt(85000)}},
		},
		ExportedAt: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestObjectName(t *testing.T) {
	a := backup.ObjectName(exportDoc())
	b := backup.ObjectName(exportDoc())

	assert.True(t, strings.HasPrefix(a, "businesshub-export-2024-03-15-"))
	assert.True(t, strings.HasSuffix(a, ".json"))
	assert.NotEqual(t, a, b)
}

func TestEncode_ExportFormat(t *testing.T) {
	data, err := backup.Encode(exportDoc())
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Contains(t, fields, "clients")
	assert.Contains(t, fields, "expenses")
	assert.Contains(t, fields, "employees")
	assert.Contains(t, fields, "exportedAt")
}

func TestEncode_MoneyAsNumbers(t *testing.T) {
	data, err := backup.Encode(exportDoc())
	require.NoError(t, err)

	var doc struct {
		Clients   []map[string]any `json:"clients"`
		Expenses  []map[string]any `json:"expenses"`
		Employees []map[string]any `json:"employees"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Clients, 1)
	require.Len(t, doc.Expenses, 1)
	require.Len(t, doc.Employees, 1)

	assert.IsType(t, float64(0), doc.Clients[0]["service_cost"])
	assert.InDelta(t, 180000, doc.Clients[0]["service_cost"], 0)
	assert.IsType(t, float64(0), doc.Expenses[0]["amount"])
	assert.InDelta(t, 12000.5, doc.Expenses[0]["amount"], 0)
	assert.IsType(t, float64(0), doc.Employees[0]["salary"])

	// Numbers decode back to the same exact decimals.
	var back domain.ExportDocument
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Expenses[0].Amount.Equal(decimal.RequireFromString("12000.50")))
	assert.True(t, back.Clients[0].ServiceCost.Equal(decimal.NewFromInt(180000)))
}

func TestDirSink_Put(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	sink := backup.DirSink{Dir: dir}

	require.NoError(t, sink.Put(context.Background(), "backup.json", []byte(`{"clients":[]}`)))

	got, err := os.ReadFile(filepath.Join(dir, "backup.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"clients":[]}`, string(got))
}

func TestDirSink_PutStaysInDir(t *testing.T) {
	dir := t.TempDir()
	sink := backup.DirSink{Dir: dir}

	require.NoError(t, sink.Put(context.Background(), "../escape.json", []byte(`{}`)))

	_, err := os.Stat(filepath.Join(dir, "escape.json"))
	assert.NoError(t, err)
}
