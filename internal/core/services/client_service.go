package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/utils"
	"github.com/SscSPs/business_hub_app/internal/utils/filtering"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo  portsrepo.ClientRepositoryFacade
	expenseRepo portsrepo.ExpenseWriter
	txManager   portsrepo.TransactionManager
}

// NewClientService creates a new client service with the provided options
func NewClientService(
	clientRepo portsrepo.ClientRepositoryFacade,
	expenseRepo portsrepo.ExpenseWriter,
	txManager portsrepo.TransactionManager,
	options ...ServiceOption,
) portssvc.ClientSvcFacade {
	return &clientService{
		BaseService: newBaseService(options...),
		clientRepo:  clientRepo,
		expenseRepo: expenseRepo,
		txManager:   txManager,
	}
}

// Ensure clientService implements the ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.ClientRequest) (*domain.Client, error) {
	client := req.ToDomain()
	client.ApplyDefaults(s.Today())
	if err := client.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected invalid client", slog.String("error", err.Error()))
		s.notifyFailure(ctx, "client.create", err)
		return nil, err
	}

	created, err := s.clientRepo.SaveClient(ctx, client)
	if err != nil {
		s.LogError(ctx, err, "Failed to save client in repository", slog.String("client_name", client.ClientName))
		s.notifyFailure(ctx, "client.create", err)
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.LogInfo(ctx, "Client created successfully", slog.Int64("client_id", created.ID))
	s.Notify(ctx, domain.SeveritySuccess, "client.create", "Client added successfully.")
	return created, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		// Note: Don't log if error is ErrNotFound, as it's an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client by ID in repository", slog.Int64("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

// ListClients retrieves the stored clients narrowed by the filter.
func (s *clientService) ListClients(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients from repository")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}

	filtered := filtering.Clients(clients, filter)
	s.LogDebug(ctx, "Clients listed successfully", slog.Int("total", len(clients)), slog.Int("matched", len(filtered)))
	return filtered, nil
}

// UpdateClient replaces all fields of the client. An empty added date keeps the stored one.
func (s *clientService) UpdateClient(ctx context.Context, clientID int64, req dto.ClientRequest) (*domain.Client, error) {
	existing, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load client for update", slog.Int64("client_id", clientID))
		}
		s.notifyFailure(ctx, "client.update", err)
		return nil, err
	}

	updated := req.ToDomain()
	updated.ID = existing.ID
	if updated.AddedDate.IsZero() {
		updated.AddedDate = existing.AddedDate
	}
	updated.ApplyDefaults(s.Today())
	if err := updated.Validate(); err != nil {
		s.notifyFailure(ctx, "client.update", err)
		return nil, err
	}

	if err := s.clientRepo.UpdateClient(ctx, updated); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update client in repository", slog.Int64("client_id", clientID))
		}
		s.notifyFailure(ctx, "client.update", err)
		return nil, err
	}

	s.LogInfo(ctx, "Client updated successfully", slog.Int64("client_id", clientID))
	s.Notify(ctx, domain.SeveritySuccess, "client.update", "Client updated successfully.")
	return &updated, nil
}

// DeleteClient removes the client and clears the reference on its expenses in one transaction.
func (s *clientService) DeleteClient(ctx context.Context, clientID int64) error {
	var detached int64
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.clientRepo.DeleteClient(txCtx, clientID); err != nil {
			return err
		}
		n, err := s.expenseRepo.DetachClient(txCtx, clientID)
		if err != nil {
			return fmt.Errorf("failed to detach expenses: %w", err)
		}
		detached = n
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete client", slog.Int64("client_id", clientID))
		}
		s.notifyFailure(ctx, "client.delete", err)
		return err
	}

	s.LogInfo(ctx, "Client deleted successfully", slog.Int64("client_id", clientID), slog.Int64("detached_expenses", detached))
	s.Notify(ctx, domain.SeverityInfo, "client.delete", "Client deleted.")
	return nil
}

// MarkPaymentPaid records the payment. A Pending project is promoted to Current.
func (s *clientService) MarkPaymentPaid(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load client for payment", slog.Int64("client_id", clientID))
		}
		s.notifyFailure(ctx, "client.mark_paid", err)
		return nil, err
	}

	client.MarkPaid()
	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to mark client payment paid", slog.Int64("client_id", clientID))
		}
		s.notifyFailure(ctx, "client.mark_paid", err)
		return nil, err
	}

	s.LogInfo(ctx, "Client payment marked paid", slog.Int64("client_id", clientID), slog.String("project_status", string(client.ProjectStatus)))
	s.Notify(ctx, domain.SeveritySuccess, "client.mark_paid",
		fmt.Sprintf("Payment of %s from %s marked as paid.", utils.FormatINR(client.ServiceCost), client.ClientName))
	return client, nil
}
