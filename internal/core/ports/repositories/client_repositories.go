package repositories

import (
	"context"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client. Returns apperrors.ErrNotFound if it does not exist.
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// ListClients retrieves every client, newest first.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client and returns it with its assigned ID.
	SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// UpdateClient replaces all fields of an existing client.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client. It does not touch expenses.
	DeleteClient(ctx context.Context, clientID int64) error

	// ReplaceClients removes every client and stores the given ones with their IDs.
	ReplaceClients(ctx context.Context, clients []domain.Client) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
