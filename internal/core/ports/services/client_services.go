package services

import (
	"context"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/SscSPs/business_hub_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client.
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// ListClients retrieves the clients matching the filter.
	ListClients(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient validates and persists a new client.
	CreateClient(ctx context.Context, req dto.ClientRequest) (*domain.Client, error)

	// UpdateClient replaces every field of an existing client.
	UpdateClient(ctx context.Context, clientID int64, req dto.ClientRequest) (*domain.Client, error)

	// DeleteClient removes a client and detaches its expenses.
	DeleteClient(ctx context.Context, clientID int64) error

	// MarkPaymentPaid marks the client's payment as received.
	MarkPaymentPaid(ctx context.Context, clientID int64) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
