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
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, full_name, currency_code, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.FullName,
		&m.CurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount persists a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, full_name, currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.FullName,
		m.CurrencyCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, m.FullName)
		}
		return fmt.Errorf("failed to save account %s: %w", m.FullName, err)
	}
	return nil
}

// FindAccountByFullName retrieves an account by its hierarchical path.
func (r *PgxAccountRepository) FindAccountByFullName(ctx context.Context, fullName string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE full_name = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, fullName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by full name %s: %w", fullName, err)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindAccountsByFullNames retrieves multiple accounts keyed by full name.
// Missing names are simply absent from the result map.
func (r *PgxAccountRepository) FindAccountsByFullNames(ctx context.Context, fullNames []string) (map[string]domain.Account, error) {
	if len(fullNames) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE full_name = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, fullNames)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by full names: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}

	result := make(map[string]domain.Account, len(ms))
	for _, m := range ms {
		result[m.FullName] = mapping.ToDomainAccount(m)
	}
	return result, nil
}

// ListAccounts retrieves accounts ordered by full name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY full_name LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}
