package pgsql

import (
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all Postgres-backed repositories over one
// connection pool. txAttempts bounds transaction retries on serialization
// failures.
func NewRepositoryProvider(dbPool *pgxpool.Pool, txAttempts int) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:    newPgxCurrencyRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool, txAttempts),
		BalanceRepo:     newPgxBalanceRepository(dbPool),
		RateEventRepo:   newPgxRateEventRepository(dbPool),
	}
}
