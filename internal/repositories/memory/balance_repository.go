package memory

import (
	"context"
	"sync"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// BalanceRepository is a process-local balance cache. State is lost on
// restart; the balance service rebuilds it from transaction history on the
// first query per account.
type BalanceRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.BalanceCacheEntry
}

// NewBalanceRepository creates an empty in-memory balance cache.
func NewBalanceRepository() *BalanceRepository {
	return &BalanceRepository{
		entries: make(map[string]domain.BalanceCacheEntry),
	}
}

// Ensure implementation matches interface
var _ portsrepo.BalanceRepositoryFacade = (*BalanceRepository)(nil)

// GetCache retrieves the cached balance for an account.
func (r *BalanceRepository) GetCache(_ context.Context, accountID string) (*domain.BalanceCacheEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

// UpsertCache overwrites the cached balance for an account.
func (r *BalanceRepository) UpsertCache(_ context.Context, accountID string, amount decimal.Decimal, ts time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[accountID] = domain.BalanceCacheEntry{AccountID: accountID, Amount: amount, LastTS: ts}
	return nil
}

// ApplyDelta adds a delta to the cached balance under the repository lock,
// creating the entry when absent. LastTS only moves forward.
func (r *BalanceRepository) ApplyDelta(_ context.Context, accountID string, delta decimal.Decimal, ts time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[accountID]
	if !ok {
		entry = domain.BalanceCacheEntry{AccountID: accountID, Amount: decimal.Zero, LastTS: ts}
	}
	entry.Amount = entry.Amount.Add(delta)
	if ts.After(entry.LastTS) {
		entry.LastTS = ts
	}
	r.entries[accountID] = entry
	return nil
}

// ClearCache removes the cached balance for an account.
func (r *BalanceRepository) ClearCache(_ context.Context, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, accountID)
	return nil
}
