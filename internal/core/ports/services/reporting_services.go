package services

import (
	"context"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
)

// ReportingSvcFacade defines the trading balance reports.
type ReportingSvcFacade interface {
	// TradingBalance aggregates all ledger activity up to asOf by currency,
	// with no conversion.
	TradingBalance(ctx context.Context, asOf time.Time) ([]domain.TradingBalanceRow, error)

	// TradingBalanceDetailed aggregates and converts to the base currency.
	// An empty baseCode uses the catalog's marked base.
	TradingBalanceDetailed(ctx context.Context, baseCode string, asOf time.Time) ([]domain.TradingBalanceDetailedRow, error)
}
