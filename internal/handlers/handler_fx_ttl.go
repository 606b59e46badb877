package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	portssvc "github.com/avasiliev/fx_ledger_app/internal/core/ports/services"
	"github.com/avasiliev/fx_ledger_app/internal/dto"
	"github.com/avasiliev/fx_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fxTTLHandler handles HTTP requests for exchange-rate audit housekeeping.
type fxTTLHandler struct {
	fxTTLService portssvc.FxTTLSvcFacade
}

// newFxTTLHandler creates a new fxTTLHandler.
func newFxTTLHandler(fs portssvc.FxTTLSvcFacade) *fxTTLHandler {
	return &fxTTLHandler{
		fxTTLService: fs,
	}
}

// registerFxTTLRoutes registers the housekeeping admin routes.
func registerFxTTLRoutes(rg *gin.RouterGroup, fxTTLService portssvc.FxTTLSvcFacade) {
	h := newFxTTLHandler(fxTTLService)

	admin := rg.Group("/admin/fx-ttl")
	{
		admin.POST("/plan", h.planTTL)
		admin.POST("/execute", h.executeTTL)
	}
}

// planTTL godoc
// @Summary Plan rate-audit retention housekeeping
// @Description Computes the retention cutoff and batch layout without touching storage
// @Tags fx-ttl
// @Accept  json
// @Produce  json
// @Param   request body dto.FxTTLPlanRequest true "Retention parameters"
// @Success 200 {object} domain.TTLPlan
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to plan housekeeping"
// @Security BearerAuth
// @Router /admin/fx-ttl/plan [post]
func (h *fxTTLHandler) planTTL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FxTTLPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for planTTL", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	plan, err := h.fxTTLService.PlanTTL(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to plan rate-audit housekeeping", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to plan housekeeping"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// executeTTL godoc
// @Summary Execute a housekeeping plan
// @Description Re-validates the plan's self-consistency and processes it batch by batch
// @Tags fx-ttl
// @Accept  json
// @Produce  json
// @Param   request body dto.FxTTLExecuteRequest true "Plan to execute"
// @Success 200 {object} dto.FxTTLResultResponse
// @Failure 400 {object} map[string]string "Plan is inconsistent"
// @Failure 500 {object} map[string]string "Failed to execute housekeeping"
// @Security BearerAuth
// @Router /admin/fx-ttl/execute [post]
func (h *fxTTLHandler) executeTTL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FxTTLExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for executeTTL", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.fxTTLService.ExecuteTTL(c.Request.Context(), &req.Plan)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to execute rate-audit housekeeping", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute housekeeping"})
		return
	}

	c.JSON(http.StatusOK, dto.FxTTLResultResponse{
		ArchivedCount:   result.ArchivedCount,
		DeletedCount:    result.DeletedCount,
		BatchesExecuted: result.BatchesExecuted,
	})
}
