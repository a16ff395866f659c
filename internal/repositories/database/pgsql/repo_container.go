package pgsql

import (
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:   newPgxClientRepository(dbPool),
		ExpenseRepo:  newPgxExpenseRepository(dbPool),
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
		TxManager:    &TxManager{BaseRepository: BaseRepository{Pool: dbPool}},
	}
}
