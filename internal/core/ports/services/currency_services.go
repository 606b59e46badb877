package services

import (
	"context"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/avasiliev/fx_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencySvcFacade defines the currency catalog operations.
type CurrencySvcFacade interface {
	// CreateCurrency adds a validated currency to the catalog.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creator string) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves the full catalog.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// SetBaseCurrency makes the given code the single base currency.
	SetBaseCurrency(ctx context.Context, code string, updater string) (*domain.Currency, error)

	// UpdateRate sets a currency's rate to base and appends an audit event.
	UpdateRate(ctx context.Context, code string, rate decimal.Decimal, updater string) (*domain.Currency, error)

	// ListRateEvents retrieves audit events newest-first, optionally
	// filtered by currency code.
	ListRateEvents(ctx context.Context, code string, limit int) ([]domain.RateEvent, error)
}
