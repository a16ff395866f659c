// Package memory provides the default record store: process-local maps guarded by mutexes.
package memory

import (
	"context"
	"maps"
	"sort"
	"sync"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
)

// state is one consistent version of the three collections and their id counters.
type state struct {
	clients   map[int64]domain.Client
	expenses  map[int64]domain.Expense
	employees map[int64]domain.Employee

	nextClientID   int64
	nextExpenseID  int64
	nextEmployeeID int64
}

func newState() *state {
	return &state{
		clients:        make(map[int64]domain.Client),
		expenses:       make(map[int64]domain.Expense),
		employees:      make(map[int64]domain.Employee),
		nextClientID:   1,
		nextExpenseID:  1,
		nextEmployeeID: 1,
	}
}

func (st *state) clone() *state {
	return &state{
		clients:        maps.Clone(st.clients),
		expenses:       maps.Clone(st.expenses),
		employees:      maps.Clone(st.employees),
		nextClientID:   st.nextClientID,
		nextExpenseID:  st.nextExpenseID,
		nextEmployeeID: st.nextEmployeeID,
	}
}

// Store holds the committed state. Writers are serialized; readers outside a
// transaction only ever see committed state.
type Store struct {
	mu        sync.RWMutex // guards committed
	writeMu   sync.Mutex   // held by every writer and by a running transaction
	committed *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{committed: newState()}
}

// txKey marks a context bound to a transaction of a specific store.
type txKey struct {
	store *Store
}

func (s *Store) txState(ctx context.Context) (*state, bool) {
	st, ok := ctx.Value(txKey{store: s}).(*state)
	return st, ok
}

func (s *Store) read(ctx context.Context, fn func(st *state)) {
	if st, ok := s.txState(ctx); ok {
		fn(st)
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.committed)
}

// write runs fn against the state visible to ctx. fn must check its preconditions
// before changing anything.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if st, ok := s.txState(ctx); ok {
		return fn(st)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.committed)
}

// RunInTx runs fn against a private copy of the state and publishes the copy only
// when fn succeeds. Nested calls join the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := s.txState(ctx); ok {
		return fn(ctx)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	work := s.committed.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{store: s}, work)); err != nil {
		return err
	}

	s.mu.Lock()
	s.committed = work
	s.mu.Unlock()
	return nil
}

var _ portsrepo.TransactionManager = (*Store)(nil)

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:   &ClientRepository{store: store},
		ExpenseRepo:  &ExpenseRepository{store: store},
		EmployeeRepo: &EmployeeRepository{store: store},
		TxManager:    store,
	}
}

func nextIDAfter[T any](items map[int64]T) int64 {
	var highest int64
	for id := range items {
		highest = max(highest, id)
	}
	return highest + 1
}

func sortedByIDDesc[T any](items map[int64]T) []T {
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, items[id])
	}
	return out
}
