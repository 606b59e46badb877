package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeTTLCutoff(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cutoff, err := domain.MakeTTLCutoff(now, 30)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-30*24*time.Hour), cutoff)

	cutoff, err = domain.MakeTTLCutoff(now, 0)
	require.NoError(t, err)
	assert.Equal(t, now, cutoff)

	_, err = domain.MakeTTLCutoff(now, -1)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestMakeTTLCutoff_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, loc)

	cutoff, err := domain.MakeTTLCutoff(now, 1)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cutoff.Location())
	assert.True(t, cutoff.Equal(now.Add(-24*time.Hour)))
}

func TestIdentifyOldEvents(t *testing.T) {
	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rate := decimal.RequireFromString("1.25")
	events := []domain.RateEvent{
		{ID: 3, CurrencyCode: "EUR", Rate: rate, OccurredAt: cutoff.Add(-48 * time.Hour)},
		{ID: 1, CurrencyCode: "EUR", Rate: rate, OccurredAt: cutoff.Add(-time.Hour)},
		{ID: 2, CurrencyCode: "EUR", Rate: rate, OccurredAt: cutoff}, // exactly at cutoff: kept
		{ID: 4, CurrencyCode: "EUR", Rate: rate, OccurredAt: cutoff.Add(time.Hour)},
	}

	old, err := domain.IdentifyOldEvents(events, cutoff)
	require.NoError(t, err)
	require.Len(t, old, 2)
	// Input order preserved, strict before-cutoff filter.
	assert.Equal(t, int64(3), old[0].ID)
	assert.Equal(t, int64(1), old[1].ID)
}

func TestIdentifyOldEvents_Invalid(t *testing.T) {
	cutoff := time.Now().UTC()

	_, err := domain.IdentifyOldEvents([]domain.RateEvent{{ID: 0, OccurredAt: cutoff}}, cutoff)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = domain.IdentifyOldEvents([]domain.RateEvent{{ID: 1}}, cutoff)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestPlanTTLBatches(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		batchSize int
		want      []domain.TTLBatch
		wantErr   bool
	}{
		{
			name: "remainder batch", total: 7, batchSize: 3,
			want: []domain.TTLBatch{{Offset: 0, Limit: 3}, {Offset: 3, Limit: 3}, {Offset: 6, Limit: 1}},
		},
		{
			name: "exact partition", total: 6, batchSize: 3,
			want: []domain.TTLBatch{{Offset: 0, Limit: 3}, {Offset: 3, Limit: 3}},
		},
		{
			name: "single short batch", total: 2, batchSize: 10,
			want: []domain.TTLBatch{{Offset: 0, Limit: 2}},
		},
		{name: "zero total", total: 0, batchSize: 5, want: []domain.TTLBatch{}},
		{name: "negative total", total: -1, batchSize: 5, wantErr: true},
		{name: "zero batch size", total: 5, batchSize: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches, err := domain.PlanTTLBatches(tt.total, tt.batchSize)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, batches)

			covered := 0
			for _, b := range batches {
				assert.Equal(t, covered, b.Offset)
				covered += b.Limit
			}
			assert.Equal(t, tt.total, covered)
		})
	}
}

func TestParseTTLMode(t *testing.T) {
	mode, err := domain.ParseTTLMode("Archive")
	require.NoError(t, err)
	assert.Equal(t, domain.TTLModeArchive, mode)

	_, err = domain.ParseTTLMode("purge")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestValidateTTLPlan(t *testing.T) {
	valid := &domain.TTLPlan{
		Mode:         domain.TTLModeDelete,
		TotalOld:     3,
		Batches:      []domain.TTLBatch{{Offset: 0, Limit: 2}, {Offset: 2, Limit: 1}},
		CandidateIDs: []int64{10, 11, 12},
	}
	assert.NoError(t, domain.ValidateTTLPlan(valid))

	gap := &domain.TTLPlan{
		Mode:         domain.TTLModeDelete,
		TotalOld:     3,
		Batches:      []domain.TTLBatch{{Offset: 0, Limit: 1}, {Offset: 2, Limit: 1}},
		CandidateIDs: []int64{10, 11, 12},
	}
	assert.True(t, errors.Is(domain.ValidateTTLPlan(gap), apperrors.ErrValidation))

	shortCover := &domain.TTLPlan{
		Mode:         domain.TTLModeDelete,
		TotalOld:     3,
		Batches:      []domain.TTLBatch{{Offset: 0, Limit: 2}},
		CandidateIDs: []int64{10, 11, 12},
	}
	assert.True(t, errors.Is(domain.ValidateTTLPlan(shortCover), apperrors.ErrValidation))

	mismatch := &domain.TTLPlan{
		Mode:         domain.TTLModeDelete,
		TotalOld:     2,
		Batches:      []domain.TTLBatch{{Offset: 0, Limit: 2}},
		CandidateIDs: []int64{10},
	}
	assert.True(t, errors.Is(domain.ValidateTTLPlan(mismatch), apperrors.ErrValidation))

	noCandidates := &domain.TTLPlan{
		Mode:     domain.TTLModeDelete,
		TotalOld: 2,
		Batches:  []domain.TTLBatch{{Offset: 0, Limit: 2}},
	}
	err := domain.ValidateTTLPlan(noCandidates)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Contains(t, err.Error(), "requires candidate ids")
}
