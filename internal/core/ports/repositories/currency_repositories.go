package repositories

import (
	"context"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies in the catalog.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// FindBaseCurrency retrieves the currency marked as base, or
	// apperrors.ErrNotFound when the catalog has no base defined.
	FindBaseCurrency(ctx context.Context) (*domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency inserts or updates a currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// SetBaseCurrency marks the given code as base and unmarks all others.
	SetBaseCurrency(ctx context.Context, currencyCode string, updatedBy string) error

	// ClearBaseCurrency unmarks every currency, leaving the catalog with no base.
	ClearBaseCurrency(ctx context.Context, updatedBy string) error

	// BulkUpsertRates updates the rate-to-base of multiple currencies at once.
	BulkUpsertRates(ctx context.Context, rates map[string]decimal.Decimal, updatedBy string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
