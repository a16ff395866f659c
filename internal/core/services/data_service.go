package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
)

// dataTransferService exports and imports the whole business state.
type dataTransferService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewDataTransferService creates the export/import service.
func NewDataTransferService(repos portsrepo.RepositoryProvider, options ...ServiceOption) portssvc.DataTransferSvc {
	return &dataTransferService{
		BaseService: newBaseService(options...),
		repos:       repos,
	}
}

var _ portssvc.DataTransferSvc = (*dataTransferService)(nil)

func (s *dataTransferService) snapshot(ctx context.Context) (domain.Snapshot, error) {
	clients, err := s.repos.ClientRepo.ListClients(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to list clients: %w", err)
	}
	expenses, err := s.repos.ExpenseRepo.ListExpenses(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	employees, err := s.repos.EmployeeRepo.ListEmployees(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return domain.Snapshot{
		Clients:   nonNil(clients),
		Expenses:  nonNil(expenses),
		Employees: nonNil(employees),
	}, nil
}

func (s *dataTransferService) exportDocument(ctx context.Context) (*domain.ExportDocument, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ExportDocument{Snapshot: snap, ExportedAt: s.Now()}, nil
}

func (s *dataTransferService) Export(ctx context.Context) (*domain.ExportDocument, error) {
	doc, err := s.exportDocument(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to export data")
		s.notifyFailure(ctx, "data.export", err)
		return nil, err
	}

	s.LogInfo(ctx, "Data exported",
		slog.Int("clients", len(doc.Clients)),
		slog.Int("expenses", len(doc.Expenses)),
		slog.Int("employees", len(doc.Employees)))
	s.Notify(ctx, domain.SeveritySuccess, "data.export", "Data exported.")
	return doc, nil
}

func (s *dataTransferService) BackupExport(ctx context.Context) (*domain.ExportDocument, error) {
	doc, err := s.exportDocument(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to build backup export")
		return nil, err
	}
	s.LogDebug(ctx, "Backup export built", slog.Int("clients", len(doc.Clients)))
	return doc, nil
}

// importPayload holds the collections present as arrays in an import document.
// A nil slice means the collection is left untouched.
type importPayload struct {
	clients   []domain.Client
	expenses  []domain.Expense
	employees []domain.Employee
}

// decodeCollection decodes field when it is a JSON array. present is false for a
// missing or non-array field.
func decodeCollection[T any](fields map[string]json.RawMessage, name string) (items []T, present bool, err error) {
	raw, ok := fields[name]
	if !ok {
		return nil, false, nil
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false, nil
	}
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", apperrors.ErrImportParse, name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

func uniqueIDs[T any](items []T, id func(T) int64, name string) error {
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		v := id(item)
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: %s: duplicate id %d", apperrors.ErrImportParse, name, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func (s *dataTransferService) parseImport(payload []byte) (*importPayload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrImportParse, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: document is not an object", apperrors.ErrImportParse)
	}

	out := &importPayload{}
	today := s.Today()

	clients, ok, err := decodeCollection[domain.Client](fields, "clients")
	if err != nil {
		return nil, err
	}
	if ok {
		if err := uniqueIDs(clients, func(c domain.Client) int64 { return c.ID }, "clients"); err != nil {
			return nil, err
		}
		for i := range clients {
			clients[i].ApplyDefaults(today)
		}
		out.clients = clients
	}

	expenses, ok, err := decodeCollection[domain.Expense](fields, "expenses")
	if err != nil {
		return nil, err
	}
	if ok {
		if err := uniqueIDs(expenses, func(e domain.Expense) int64 { return e.ID }, "expenses"); err != nil {
			return nil, err
		}
		for i := range expenses {
			expenses[i].ApplyDefaults()
		}
		out.expenses = expenses
	}

	employees, ok, err := decodeCollection[domain.Employee](fields, "employees")
	if err != nil {
		return nil, err
	}
	if ok {
		if err := uniqueIDs(employees, func(e domain.Employee) int64 { return e.ID }, "employees"); err != nil {
			return nil, err
		}
		for i := range employees {
			employees[i].ApplyDefaults(today)
		}
		out.employees = employees
	}

	return out, nil
}

// Import replaces each collection present as an array in payload. All replacements
// share one transaction.
func (s *dataTransferService) Import(ctx context.Context, payload []byte) (*domain.ImportResult, error) {
	parsed, err := s.parseImport(payload)
	if err != nil {
		s.LogDebug(ctx, "Rejected import payload", slog.String("error", err.Error()))
		s.notifyFailure(ctx, "data.import", err)
		return nil, err
	}

	result := &domain.ImportResult{}
	err = s.repos.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if parsed.clients != nil {
			if err := s.repos.ClientRepo.ReplaceClients(txCtx, parsed.clients); err != nil {
				return fmt.Errorf("failed to replace clients: %w", err)
			}
			result.Clients = intPtr(len(parsed.clients))
		}
		if parsed.expenses != nil {
			if err := s.repos.ExpenseRepo.ReplaceExpenses(txCtx, parsed.expenses); err != nil {
				return fmt.Errorf("failed to replace expenses: %w", err)
			}
			result.Expenses = intPtr(len(parsed.expenses))
		}
		if parsed.employees != nil {
			if err := s.repos.EmployeeRepo.ReplaceEmployees(txCtx, parsed.employees); err != nil {
				return fmt.Errorf("failed to replace employees: %w", err)
			}
			result.Employees = intPtr(len(parsed.employees))
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to import data")
		s.notifyFailure(ctx, "data.import", err)
		return nil, err
	}

	s.LogInfo(ctx, "Data imported",
		slog.Bool("clients", result.Clients != nil),
		slog.Bool("expenses", result.Expenses != nil),
		slog.Bool("employees", result.Employees != nil))
	s.Notify(ctx, domain.SeveritySuccess, "data.import", "Data imported.")
	return result, nil
}

func (s *dataTransferService) replaceAll(ctx context.Context, snap domain.Snapshot) error {
	if err := s.repos.ClientRepo.ReplaceClients(ctx, nonNil(snap.Clients)); err != nil {
		return fmt.Errorf("failed to replace clients: %w", err)
	}
	if err := s.repos.ExpenseRepo.ReplaceExpenses(ctx, nonNil(snap.Expenses)); err != nil {
		return fmt.Errorf("failed to replace expenses: %w", err)
	}
	if err := s.repos.EmployeeRepo.ReplaceEmployees(ctx, nonNil(snap.Employees)); err != nil {
		return fmt.Errorf("failed to replace employees: %w", err)
	}
	return nil
}

func (s *dataTransferService) Restore(ctx context.Context, snap domain.Snapshot) error {
	err := s.repos.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.replaceAll(txCtx, snap)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to restore snapshot")
		return err
	}
	s.LogInfo(ctx, "Snapshot restored")
	return nil
}

func (s *dataTransferService) SeedIfEmpty(ctx context.Context, snap domain.Snapshot) (bool, error) {
	seeded := false
	err := s.repos.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.snapshot(txCtx)
		if err != nil {
			return err
		}
		if !current.IsEmpty() {
			return nil
		}
		if err := s.replaceAll(txCtx, snap); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed sample data")
		return false, err
	}
	if seeded {
		s.LogInfo(ctx, "Sample data seeded",
			slog.Int("clients", len(snap.Clients)),
			slog.Int("expenses", len(snap.Expenses)),
			slog.Int("employees", len(snap.Employees)))
	}
	return seeded, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func intPtr(v int) *int {
	return &v
}
