package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	portssvc "github.com/avasiliev/fx_ledger_app/internal/core/ports/services"
	"github.com/avasiliev/fx_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for trading balance reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trading-balance", h.tradingBalance)
		reports.GET("/trading-balance/detailed", h.tradingBalanceDetailed)
	}
}

// tradingBalance godoc
// @Summary Trading balance report
// @Description Aggregates all ledger activity up to a point in time, per currency, with no conversion
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Point in time (RFC3339), defaults to now"
// @Success 200 {array} domain.TradingBalanceRow
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/trading-balance [get]
func (h *reportingHandler) tradingBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, err := parseTimeQuery(c, "asOf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf time: " + err.Error()})
		return
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	rows, err := h.reportingService.TradingBalance(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to build trading balance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// tradingBalanceDetailed godoc
// @Summary Trading balance report in base currency
// @Description Aggregates ledger activity per currency and converts totals to the base currency
// @Tags reports
// @Produce  json
// @Param   base query string false "Base currency code; defaults to the catalog's marked base"
// @Param   asOf query string false "Point in time (RFC3339), defaults to now"
// @Success 200 {array} domain.TradingBalanceDetailedRow
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/trading-balance/detailed [get]
func (h *reportingHandler) tradingBalanceDetailed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, err := parseTimeQuery(c, "asOf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf time: " + err.Error()})
		return
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	baseCode := c.Query("base")

	rows, err := h.reportingService.TradingBalanceDetailed(c.Request.Context(), baseCode, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to build detailed trading balance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, rows)
}
