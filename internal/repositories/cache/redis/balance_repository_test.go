package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/models"
	redisrepo "github.com/avasiliev/fx_ledger_app/internal/repositories/cache/redis"
	"github.com/go-redis/redismock/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodedEntry(t *testing.T, accountID string, amount string, ts time.Time) string {
	t.Helper()
	payload, err := json.Marshal(models.BalanceCache{
		AccountID: accountID,
		Amount:    decimal.RequireFromString(amount),
		LastTS:    ts,
	})
	require.NoError(t, err)
	return string(payload)
}

func TestBalanceRepository_GetCacheMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := redisrepo.NewBalanceRepository(client)

	mock.ExpectGet("balance:acc-1").RedisNil()

	entry, err := repo.GetCache(context.Background(), "acc-1")

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepository_GetCacheHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := redisrepo.NewBalanceRepository(client)
	ts := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	mock.ExpectGet("balance:acc-1").SetVal(encodedEntry(t, "acc-1", "42.50", ts))

	entry, err := repo.GetCache(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("42.50")))
	assert.True(t, entry.LastTS.Equal(ts))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepository_ApplyDeltaFoldsIntoExisting(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := redisrepo.NewBalanceRepository(client)
	ts := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	later := ts.Add(time.Hour)

	mock.ExpectGet("balance:acc-1").SetVal(encodedEntry(t, "acc-1", "100", ts))
	mock.ExpectSet("balance:acc-1", []byte(encodedEntry(t, "acc-1", "74.75", later)), 0).SetVal("OK")

	err := repo.ApplyDelta(context.Background(), "acc-1", decimal.RequireFromString("-25.25"), later)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepository_ApplyDeltaCreatesEntry(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := redisrepo.NewBalanceRepository(client)
	ts := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	mock.ExpectGet("balance:acc-1").RedisNil()
	mock.ExpectSet("balance:acc-1", []byte(encodedEntry(t, "acc-1", "30", ts)), 0).SetVal("OK")

	err := repo.ApplyDelta(context.Background(), "acc-1", decimal.NewFromInt(30), ts)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepository_ClearCache(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := redisrepo.NewBalanceRepository(client)

	mock.ExpectDel("balance:acc-1").SetVal(1)

	require.NoError(t, repo.ClearCache(context.Background(), "acc-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
