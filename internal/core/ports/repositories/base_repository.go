package repositories

import (
	"context"
)

// TransactionManager groups several repository calls into one atomic unit.
type TransactionManager interface {
	// RunInTx calls fn with a context bound to a transaction. Repository calls made
	// with that context join the transaction. If fn returns an error every write is
	// discarded; otherwise all of them are committed.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
