package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	"github.com/avasiliev/fx_ledger_app/internal/models"
	"github.com/avasiliev/fx_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency catalog data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

const currencyColumns = `currency_code, is_base, rate_to_base, created_at, created_by, last_updated_at, last_updated_by`

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(
		&m.Code,
		&m.IsBase,
		&m.RateToBase,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCurrency inserts or updates a currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (currency_code, is_base, rate_to_base, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (currency_code) DO UPDATE SET
			is_base = EXCLUDED.is_base,
			rate_to_base = EXCLUDED.rate_to_base,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.Code,
		m.IsBase,
		m.RateToBase,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", m.Code, err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1;`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY currency_code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(ms), nil
}

// FindBaseCurrency retrieves the currency marked as base.
func (r *PgxCurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE is_base;`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find base currency: %w", err)
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// SetBaseCurrency marks the given code as base and unmarks all others in
// one transaction. The new base also drops its stored rate; it is 1 by
// definition.
func (r *PgxCurrencyRepository) SetBaseCurrency(ctx context.Context, currencyCode string, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	demote := `
		UPDATE currencies SET is_base = FALSE, last_updated_at = now(), last_updated_by = $1
		WHERE is_base AND currency_code <> $2;
	`
	if _, err := tx.Exec(ctx, demote, updatedBy, currencyCode); err != nil {
		return fmt.Errorf("failed to demote previous base currency: %w", err)
	}

	promote := `
		UPDATE currencies SET is_base = TRUE, rate_to_base = NULL, last_updated_at = now(), last_updated_by = $1
		WHERE currency_code = $2;
	`
	tag, err := tx.Exec(ctx, promote, updatedBy, currencyCode)
	if err != nil {
		return fmt.Errorf("failed to promote base currency %s: %w", currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currencyCode)
	}

	return r.Commit(ctx, tx)
}

// ClearBaseCurrency unmarks every currency, leaving the catalog with no base.
func (r *PgxCurrencyRepository) ClearBaseCurrency(ctx context.Context, updatedBy string) error {
	query := `
		UPDATE currencies SET is_base = FALSE, last_updated_at = now(), last_updated_by = $1
		WHERE is_base;
	`
	if _, err := r.Pool.Exec(ctx, query, updatedBy); err != nil {
		return fmt.Errorf("failed to clear base currency: %w", err)
	}
	return nil
}

// BulkUpsertRates updates the rate-to-base of multiple currencies at once.
func (r *PgxCurrencyRepository) BulkUpsertRates(ctx context.Context, rates map[string]decimal.Decimal, updatedBy string) error {
	if len(rates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		UPDATE currencies SET rate_to_base = $1, last_updated_at = now(), last_updated_by = $2
		WHERE currency_code = $3 AND NOT is_base;
	`
	for code, rate := range rates {
		batch.Queue(query, rate, updatedBy, code)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range rates {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to bulk upsert rates: %w", err)
		}
	}
	return nil
}
