package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/avasiliev/fx_ledger_app/internal/core/ports/services"
	"github.com/avasiliev/fx_ledger_app/internal/dto"
	"github.com/avasiliev/fx_ledger_app/internal/middleware"
)

// fxTTLService plans and executes retention housekeeping over the
// exchange-rate audit log. Planning has no side effects; execution
// re-validates the plan and processes candidates batch by batch so an
// interruption loses at most one batch of progress.
type fxTTLService struct {
	rateEventRepo portsrepo.RateEventRepositoryFacade
	clock         portssvc.Clock
	maxScan       int
}

// NewFxTTLService creates a new TTL housekeeping service. maxScan caps how
// many audit events one plan may consider.
func NewFxTTLService(rateEventRepo portsrepo.RateEventRepositoryFacade, clock portssvc.Clock, maxScan int) portssvc.FxTTLSvcFacade {
	return &fxTTLService{
		rateEventRepo: rateEventRepo,
		clock:         clock,
		maxScan:       maxScan,
	}
}

var _ portssvc.FxTTLSvcFacade = (*fxTTLService)(nil)

func (s *fxTTLService) PlanTTL(ctx context.Context, req dto.FxTTLPlanRequest) (*domain.TTLPlan, error) {
	mode, err := domain.ParseTTLMode(req.Mode)
	if err != nil {
		return nil, err
	}
	cutoff, err := domain.MakeTTLCutoff(s.clock.Now(), req.RetentionDays)
	if err != nil {
		return nil, err
	}

	scanLimit := s.maxScan
	if req.Limit != nil && *req.Limit > 0 && *req.Limit < scanLimit {
		scanLimit = *req.Limit
	}

	events, err := s.rateEventRepo.ListOldEvents(ctx, cutoff, scanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list old rate events: %w", err)
	}
	// The store already filtered on the cutoff; re-checking catches rows
	// with broken ids or timestamps before they enter a destructive plan.
	old, err := domain.IdentifyOldEvents(events, cutoff)
	if err != nil {
		return nil, err
	}

	batches, err := domain.PlanTTLBatches(len(old), req.BatchSize)
	if err != nil {
		return nil, err
	}

	candidateIDs := make([]int64, len(old))
	for i, event := range old {
		candidateIDs[i] = event.ID
	}

	return &domain.TTLPlan{
		Cutoff:        cutoff,
		Mode:          mode,
		RetentionDays: req.RetentionDays,
		BatchSize:     req.BatchSize,
		DryRun:        req.DryRun,
		TotalOld:      len(old),
		Batches:       batches,
		CandidateIDs:  candidateIDs,
	}, nil
}

func (s *fxTTLService) ExecuteTTL(ctx context.Context, plan *domain.TTLPlan) (*domain.TTLResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := domain.ValidateTTLPlan(plan); err != nil {
		return nil, err
	}

	result := &domain.TTLResult{}
	if plan.DryRun || plan.Mode == domain.TTLModeNone || plan.TotalOld == 0 {
		logger.Info("TTL execution skipped",
			slog.Bool("dry_run", plan.DryRun),
			slog.String("mode", string(plan.Mode)),
			slog.Int("total_old", plan.TotalOld),
		)
		return result, nil
	}

	for _, batch := range plan.Batches {
		ids := plan.CandidateIDs[batch.Offset : batch.Offset+batch.Limit]
		switch plan.Mode {
		case domain.TTLModeDelete:
			deleted, err := s.rateEventRepo.DeleteEventsByIDs(ctx, ids)
			if err != nil {
				return result, fmt.Errorf("failed to delete rate events at offset %d: %w", batch.Offset, err)
			}
			result.DeletedCount += int(deleted)
		case domain.TTLModeArchive:
			archived, deleted, err := s.rateEventRepo.MoveEventsToArchive(ctx, ids)
			result.ArchivedCount += int(archived)
			result.DeletedCount += int(deleted)
			if err != nil {
				return result, fmt.Errorf("failed to archive rate events at offset %d: %w", batch.Offset, err)
			}
		}
		result.BatchesExecuted++
	}

	logger.Info("TTL executed",
		slog.String("mode", string(plan.Mode)),
		slog.Int("archived", result.ArchivedCount),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("batches", result.BatchesExecuted),
	)
	return result, nil
}
