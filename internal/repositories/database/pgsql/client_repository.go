package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	"github.com/SscSPs/business_hub_app/internal/models"
	"github.com/SscSPs/business_hub_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `id, client_name, company_name, contact_info, service_name, service_cost, added_date, project_status, payment_status`

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.ClientName,
		&m.CompanyName,
		&m.ContactInfo,
		&m.ServiceName,
		&m.ServiceCost,
		&m.AddedDate,
		&m.ProjectStatus,
		&m.PaymentStatus,
	)
	return m, err
}

// SaveClient inserts a new client and returns it with the generated id.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (client_name, company_name, contact_info, service_name, service_cost, added_date, project_status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + clientColumns

	saved, err := scanClient(r.db(ctx).QueryRow(ctx, query,
		m.ClientName, m.CompanyName, m.ContactInfo, m.ServiceName,
		m.ServiceCost, m.AddedDate, m.ProjectStatus, m.PaymentStatus,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}
	d := mapping.ToDomainClient(saved)
	return &d, nil
}

// FindClientByID retrieves a client by id.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	if inTx(ctx) {
		// Holds off a concurrent delete until the caller's writes commit.
		query += ` FOR SHARE`
	}
	m, err := scanClient(r.db(ctx).QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %d: %w", clientID, err)
	}
	d := mapping.ToDomainClient(m)
	return &d, nil
}

// ListClients retrieves all clients, newest first.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		return scanClient(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	return mapping.ToDomainClientSlice(ms), nil
}

// UpdateClient overwrites every column of an existing client.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET client_name = $2, company_name = $3, contact_info = $4, service_name = $5,
			service_cost = $6, added_date = $7, project_status = $8, payment_status = $9,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db(ctx).Exec(ctx, query,
		m.ClientID, m.ClientName, m.CompanyName, m.ContactInfo, m.ServiceName,
		m.ServiceCost, m.AddedDate, m.ProjectStatus, m.PaymentStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %d: %w", m.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client row.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM clients WHERE id = $1`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceClients deletes every client and inserts the given ones with their ids.
func (r *PgxClientRepository) ReplaceClients(ctx context.Context, clients []domain.Client) error {
	q := r.db(ctx)
	if _, err := q.Exec(ctx, `DELETE FROM clients`); err != nil {
		return fmt.Errorf("failed to clear clients: %w", err)
	}

	batch := &pgx.Batch{}
	for _, c := range clients {
		m := mapping.ToModelClient(c)
		batch.Queue(`
			INSERT INTO clients (`+clientColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			m.ClientID, m.ClientName, m.CompanyName, m.ContactInfo, m.ServiceName,
			m.ServiceCost, m.AddedDate, m.ProjectStatus, m.PaymentStatus,
		)
	}
	if err := sendInserts(ctx, q, batch); err != nil {
		return fmt.Errorf("failed to insert clients: %w", err)
	}
	return resetSequence(ctx, q, "clients")
}
