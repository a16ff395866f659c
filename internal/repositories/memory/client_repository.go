package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
)

// ClientRepository stores clients in a Store.
type ClientRepository struct {
	store *Store
}

var _ portsrepo.ClientRepositoryFacade = (*ClientRepository)(nil)

func (r *ClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	var (
		client domain.Client
		ok     bool
	)
	r.store.read(ctx, func(st *state) {
		client, ok = st.clients[clientID]
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &client, nil
}

// ListClients returns every client, newest first.
func (r *ClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	r.store.read(ctx, func(st *state) {
		clients = sortedByIDDesc(st.clients)
	})
	return clients, nil
}

func (r *ClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	err := r.store.write(ctx, func(st *state) error {
		client.ID = st.nextClientID
		st.nextClientID++
		st.clients[client.ID] = client
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.clients[client.ID]; !ok {
			return apperrors.ErrNotFound
		}
		st.clients[client.ID] = client
		return nil
	})
}

func (r *ClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.clients[clientID]; !ok {
			return apperrors.ErrNotFound
		}
		delete(st.clients, clientID)
		return nil
	})
}

func (r *ClientRepository) ReplaceClients(ctx context.Context, clients []domain.Client) error {
	return r.store.write(ctx, func(st *state) error {
		replaced := make(map[int64]domain.Client, len(clients))
		for _, c := range clients {
			if _, dup := replaced[c.ID]; dup {
				return fmt.Errorf("%w: client id %d", apperrors.ErrDuplicate, c.ID)
			}
			replaced[c.ID] = c
		}
		st.clients = replaced
		st.nextClientID = nextIDAfter(replaced)
		return nil
	})
}
