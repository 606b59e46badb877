package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	"github.com/avasiliev/fx_ledger_app/internal/models"
	"github.com/avasiliev/fx_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a new repository for the balance cache.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

// GetCache retrieves the cached balance for an account.
func (r *PgxBalanceRepository) GetCache(ctx context.Context, accountID string) (*domain.BalanceCacheEntry, error) {
	query := `SELECT account_id, amount, last_ts FROM balance_cache WHERE account_id = $1;`
	var m models.BalanceCache
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(&m.AccountID, &m.Amount, &m.LastTS)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get balance cache for %s: %w", accountID, err)
	}
	d := mapping.ToDomainBalanceCacheEntry(m)
	return &d, nil
}

// UpsertCache overwrites the cached balance for an account.
func (r *PgxBalanceRepository) UpsertCache(ctx context.Context, accountID string, amount decimal.Decimal, ts time.Time) error {
	query := `
		INSERT INTO balance_cache (account_id, amount, last_ts)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			last_ts = EXCLUDED.last_ts;
	`
	if _, err := r.Pool.Exec(ctx, query, accountID, amount, ts); err != nil {
		return fmt.Errorf("failed to upsert balance cache for %s: %w", accountID, err)
	}
	return nil
}

// ApplyDelta atomically adds a delta to the cached balance, creating the
// entry when absent. The single upsert statement closes the race between
// concurrent postings touching the same account; last_ts only moves forward.
func (r *PgxBalanceRepository) ApplyDelta(ctx context.Context, accountID string, delta decimal.Decimal, ts time.Time) error {
	query := `
		INSERT INTO balance_cache (account_id, amount, last_ts)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id) DO UPDATE SET
			amount = balance_cache.amount + EXCLUDED.amount,
			last_ts = GREATEST(balance_cache.last_ts, EXCLUDED.last_ts);
	`
	if _, err := r.Pool.Exec(ctx, query, accountID, delta, ts); err != nil {
		return fmt.Errorf("failed to apply balance delta for %s: %w", accountID, err)
	}
	return nil
}

// ClearCache removes the cached balance for an account.
func (r *PgxBalanceRepository) ClearCache(ctx context.Context, accountID string) error {
	query := `DELETE FROM balance_cache WHERE account_id = $1;`
	if _, err := r.Pool.Exec(ctx, query, accountID); err != nil {
		return fmt.Errorf("failed to clear balance cache for %s: %w", accountID, err)
	}
	return nil
}
