package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RateEvent is one append-only audit record of an exchange rate change.
// Events are never mutated; TTL housekeeping may archive or delete them.
type RateEvent struct {
	ID            int64           `json:"id"`
	CurrencyCode  string          `json:"currencyCode"`
	Rate          decimal.Decimal `json:"rate"`
	OccurredAt    time.Time       `json:"occurredAt"`
	PolicyApplied string          `json:"policyApplied"`
	Source        string          `json:"source"`
}

// TTLMode selects what happens to events older than the retention cutoff.
type TTLMode string

const (
	TTLModeNone    TTLMode = "none"
	TTLModeDelete  TTLMode = "delete"
	TTLModeArchive TTLMode = "archive"
)

// ParseTTLMode accepts a mode case-insensitively.
func ParseTTLMode(mode string) (TTLMode, error) {
	switch TTLMode(strings.ToLower(strings.TrimSpace(mode))) {
	case TTLModeNone:
		return TTLModeNone, nil
	case TTLModeDelete:
		return TTLModeDelete, nil
	case TTLModeArchive:
		return TTLModeArchive, nil
	default:
		return "", fmt.Errorf("%w: ttl mode must be none, delete or archive, got %q", apperrors.ErrValidation, mode)
	}
}

// TTLBatch is one contiguous processing window over the candidate list.
// Batches exactly partition [0, total) with no gaps or overlaps.
type TTLBatch struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// TTLPlan captures everything a TTL execution needs, computed up front with
// no side effects so the plan can be inspected (or dry-run) before anything
// is touched.
type TTLPlan struct {
	Cutoff        time.Time  `json:"cutoff"`
	Mode          TTLMode    `json:"mode"`
	RetentionDays int        `json:"retentionDays"`
	BatchSize     int        `json:"batchSize"`
	DryRun        bool       `json:"dryRun"`
	TotalOld      int        `json:"totalOld"`
	Batches       []TTLBatch `json:"batches"`
	CandidateIDs  []int64    `json:"candidateIDs"`
}

// TTLResult summarizes an executed plan.
type TTLResult struct {
	ArchivedCount   int `json:"archivedCount"`
	DeletedCount    int `json:"deletedCount"`
	BatchesExecuted int `json:"batchesExecuted"`
}

// MakeTTLCutoff computes the retention cutoff: now, normalized to UTC,
// minus retentionDays fixed 24h days. Negative retention fails with
// ErrValidation.
func MakeTTLCutoff(now time.Time, retentionDays int) (time.Time, error) {
	if retentionDays < 0 {
		return time.Time{}, fmt.Errorf("%w: retention days must not be negative, got %d", apperrors.ErrValidation, retentionDays)
	}
	return now.UTC().Add(-time.Duration(retentionDays) * 24 * time.Hour), nil
}

// IdentifyOldEvents filters events strictly older than the cutoff,
// preserving input order. Non-positive ids and zero timestamps fail with
// ErrValidation.
func IdentifyOldEvents(events []RateEvent, cutoff time.Time) ([]RateEvent, error) {
	old := make([]RateEvent, 0)
	for _, event := range events {
		if event.ID <= 0 {
			return nil, fmt.Errorf("%w: rate event id must be positive, got %d", apperrors.ErrValidation, event.ID)
		}
		if event.OccurredAt.IsZero() {
			return nil, fmt.Errorf("%w: rate event %d has no timestamp", apperrors.ErrValidation, event.ID)
		}
		if event.OccurredAt.Before(cutoff) {
			old = append(old, event)
		}
	}
	return old, nil
}

// PlanTTLBatches partitions [0, total) into contiguous batches of
// batchSize, the final batch taking the remainder. The batch limits always
// sum to exactly total.
func PlanTTLBatches(total, batchSize int) ([]TTLBatch, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: total must not be negative, got %d", apperrors.ErrValidation, total)
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", apperrors.ErrValidation, batchSize)
	}
	batches := make([]TTLBatch, 0)
	for offset := 0; offset < total; offset += batchSize {
		limit := batchSize
		if offset+limit > total {
			limit = total - offset
		}
		batches = append(batches, TTLBatch{Offset: offset, Limit: limit})
	}
	return batches, nil
}

// ValidateTTLPlan checks a plan for self-consistency before any side
// effect: batches must exactly cover [0, TotalOld), the candidate list must
// match TotalOld, and destructive modes require candidates when TotalOld is
// non-zero. Catches tampered or stale plans.
func ValidateTTLPlan(plan *TTLPlan) error {
	if plan == nil {
		return fmt.Errorf("%w: ttl plan is nil", apperrors.ErrValidation)
	}
	if plan.Mode != TTLModeNone && plan.TotalOld > 0 && len(plan.CandidateIDs) == 0 {
		return fmt.Errorf("%w: mode %s requires candidate ids", apperrors.ErrValidation, plan.Mode)
	}
	if plan.TotalOld != len(plan.CandidateIDs) {
		return fmt.Errorf("%w: plan total %d does not match %d candidate ids", apperrors.ErrValidation, plan.TotalOld, len(plan.CandidateIDs))
	}
	covered := 0
	for _, batch := range plan.Batches {
		if batch.Offset != covered || batch.Limit <= 0 {
			return fmt.Errorf("%w: plan batches do not contiguously cover candidates", apperrors.ErrValidation)
		}
		covered += batch.Limit
	}
	if covered != plan.TotalOld {
		return fmt.Errorf("%w: plan batches cover %d of %d candidates", apperrors.ErrValidation, covered, plan.TotalOld)
	}
	return nil
}
