package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	"github.com/avasiliev/fx_ledger_app/internal/models"
	"github.com/avasiliev/fx_ledger_app/internal/utils/mapping"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

const balanceKeyPrefix = "balance:"

// BalanceRepository is a redis-backed balance cache. Entries are JSON
// values keyed by account id with no expiry.
//
// ApplyDelta is a read-modify-write, not an atomic increment: decimal
// amounts do not fit INCRBYFLOAT without precision loss. The posting
// pipeline is the only writer per deployment, which keeps the RMW safe; a
// multi-writer setup should use the postgres backend instead.
type BalanceRepository struct {
	client *redis.Client
}

// NewBalanceRepository creates a redis-backed balance cache over an
// existing client.
func NewBalanceRepository(client *redis.Client) *BalanceRepository {
	return &BalanceRepository{client: client}
}

// Ensure implementation matches interface
var _ portsrepo.BalanceRepositoryFacade = (*BalanceRepository)(nil)

func balanceKey(accountID string) string {
	return balanceKeyPrefix + accountID
}

// GetCache retrieves the cached balance for an account.
func (r *BalanceRepository) GetCache(ctx context.Context, accountID string) (*domain.BalanceCacheEntry, error) {
	payload, err := r.client.Get(ctx, balanceKey(accountID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get balance cache for %s: %w", accountID, err)
	}

	var m models.BalanceCache
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return nil, fmt.Errorf("failed to decode balance cache for %s: %w", accountID, err)
	}
	d := mapping.ToDomainBalanceCacheEntry(m)
	return &d, nil
}

// UpsertCache overwrites the cached balance for an account.
func (r *BalanceRepository) UpsertCache(ctx context.Context, accountID string, amount decimal.Decimal, ts time.Time) error {
	m := models.BalanceCache{AccountID: accountID, Amount: amount, LastTS: ts}
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode balance cache for %s: %w", accountID, err)
	}
	if err := r.client.Set(ctx, balanceKey(accountID), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set balance cache for %s: %w", accountID, err)
	}
	return nil
}

// ApplyDelta adds a delta to the cached balance, creating the entry when
// absent. LastTS only moves forward.
func (r *BalanceRepository) ApplyDelta(ctx context.Context, accountID string, delta decimal.Decimal, ts time.Time) error {
	entry, err := r.GetCache(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		entry = &domain.BalanceCacheEntry{AccountID: accountID, Amount: decimal.Zero, LastTS: ts}
	}
	entry.Amount = entry.Amount.Add(delta)
	if ts.After(entry.LastTS) {
		entry.LastTS = ts
	}
	return r.UpsertCache(ctx, accountID, entry.Amount, entry.LastTS)
}

// ClearCache removes the cached balance for an account.
func (r *BalanceRepository) ClearCache(ctx context.Context, accountID string) error {
	if err := r.client.Del(ctx, balanceKey(accountID)).Err(); err != nil {
		return fmt.Errorf("failed to clear balance cache for %s: %w", accountID, err)
	}
	return nil
}
