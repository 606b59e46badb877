package dto

import "github.com/avasiliev/fx_ledger_app/internal/core/domain"

// FxTTLPlanRequest defines the payload for planning exchange-rate audit
// housekeeping.
type FxTTLPlanRequest struct {
	RetentionDays int    `json:"retentionDays" binding:"min=0"`
	BatchSize     int    `json:"batchSize" binding:"required,min=1"`
	Mode          string `json:"mode" binding:"required"`
	Limit         *int   `json:"limit,omitempty"`
	DryRun        bool   `json:"dryRun"`
}

// FxTTLExecuteRequest carries a previously computed plan for execution.
// The plan is re-validated for self-consistency before any side effect.
type FxTTLExecuteRequest struct {
	Plan domain.TTLPlan `json:"plan" binding:"required"`
}

// FxTTLResultResponse defines the outcome of an executed plan.
type FxTTLResultResponse struct {
	ArchivedCount   int `json:"archivedCount"`
	DeletedCount    int `json:"deletedCount"`
	BatchesExecuted int `json:"batchesExecuted"`
}
