package services

import (
	"context"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvcFacade is the balance-cache contract. Implementations maintain
// per-account running balances incrementally and answer point-in-time
// balance queries, recomputing from history when the cache cannot serve.
type BalanceSvcFacade interface {
	// ProcessTransaction folds a newly posted transaction into the cache.
	ProcessTransaction(ctx context.Context, transaction *domain.Transaction) error

	// GetBalance returns the account balance as of the given time. With
	// recompute set, the cache is bypassed and rebuilt from history.
	GetBalance(ctx context.Context, account *domain.Account, asOf time.Time, recompute bool) (decimal.Decimal, error)
}
