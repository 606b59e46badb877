package services

import (
	"context"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/avasiliev/fx_ledger_app/internal/dto"
)

// FxTTLSvcFacade defines retention housekeeping over the exchange-rate
// audit log: side-effect-free planning and batched execution.
type FxTTLSvcFacade interface {
	// PlanTTL computes the retention cutoff, identifies candidates and lays
	// out processing batches without touching storage.
	PlanTTL(ctx context.Context, req dto.FxTTLPlanRequest) (*domain.TTLPlan, error)

	// ExecuteTTL validates a plan's self-consistency and processes it batch
	// by batch. Dry-run plans and mode "none" produce no side effects.
	ExecuteTTL(ctx context.Context, plan *domain.TTLPlan) (*domain.TTLResult, error)
}
