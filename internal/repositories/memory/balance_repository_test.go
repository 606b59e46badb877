package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceRepository_GetCacheMiss(t *testing.T) {
	repo := memory.NewBalanceRepository()

	entry, err := repo.GetCache(context.Background(), "acc-1")

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBalanceRepository_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBalanceRepository()
	ts := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpsertCache(ctx, "acc-1", decimal.RequireFromString("42.50"), ts))

	entry, err := repo.GetCache(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, ts, entry.LastTS)
}

func TestBalanceRepository_ApplyDelta(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBalanceRepository()
	ts := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.ApplyDelta(ctx, "acc-1", decimal.NewFromInt(100), ts))
	require.NoError(t, repo.ApplyDelta(ctx, "acc-1", decimal.RequireFromString("-25.25"), ts.Add(time.Hour)))

	entry, err := repo.GetCache(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("74.75")))
	assert.Equal(t, ts.Add(time.Hour), entry.LastTS)
}

func TestBalanceRepository_ApplyDeltaNeverMovesLastTSBackwards(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBalanceRepository()
	ts := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.ApplyDelta(ctx, "acc-1", decimal.NewFromInt(10), ts))
	require.NoError(t, repo.ApplyDelta(ctx, "acc-1", decimal.NewFromInt(5), ts.Add(-time.Hour)))

	entry, err := repo.GetCache(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, ts, entry.LastTS)
}

func TestBalanceRepository_ClearCache(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBalanceRepository()

	require.NoError(t, repo.UpsertCache(ctx, "acc-1", decimal.NewFromInt(1), time.Now()))
	require.NoError(t, repo.ClearCache(ctx, "acc-1"))

	_, err := repo.GetCache(ctx, "acc-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
