package repositories

import (
	"context"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReader defines read operations for the balance cache
type BalanceReader interface {
	// GetCache retrieves the cached balance for an account, or
	// apperrors.ErrNotFound when no cache entry exists.
	GetCache(ctx context.Context, accountID string) (*domain.BalanceCacheEntry, error)
}

// BalanceWriter defines write operations for the balance cache
type BalanceWriter interface {
	// UpsertCache overwrites the cached balance for an account.
	UpsertCache(ctx context.Context, accountID string, amount decimal.Decimal, ts time.Time) error

	// ApplyDelta atomically adds a delta to the cached balance, creating the
	// entry when absent. LastTS only moves forward.
	ApplyDelta(ctx context.Context, accountID string, delta decimal.Decimal, ts time.Time) error

	// ClearCache removes the cached balance for an account.
	ClearCache(ctx context.Context, accountID string) error
}

// BalanceRepositoryFacade combines all balance-cache repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
