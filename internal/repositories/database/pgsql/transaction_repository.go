package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	"github.com/avasiliev/fx_ledger_app/internal/models"
	"github.com/avasiliev/fx_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
	txAttempts int
}

// newPgxTransactionRepository creates a new repository for transaction data.
// txAttempts bounds retries of serialization failures on save.
func newPgxTransactionRepository(pool *pgxpool.Pool, txAttempts int) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		txAttempts:     txAttempts,
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// SaveTransaction persists a transaction header and all of its lines in one
// database transaction. A duplicate idempotency key fails with ErrDuplicate
// and leaves nothing written.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	err := withRetry(ctx, r.txAttempts, func(ctx context.Context) error {
		return r.saveTransactionOnce(ctx, transaction)
	})
	if err != nil {
		if isUniqueViolation(err, "ux_transactions_idempotency_key") {
			return fmt.Errorf("%w: idempotency key already used", apperrors.ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *PgxTransactionRepository) saveTransactionOnce(ctx context.Context, transaction domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	header := mapping.ToModelTransaction(transaction)
	headerQuery := `
		INSERT INTO transactions (transaction_id, occurred_at, memo, meta, idempotency_key, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, headerQuery,
		header.TransactionID,
		header.OccurredAt,
		header.Memo,
		header.Meta,
		header.IdempotencyKey,
		header.CreatedAt,
		header.CreatedBy,
		header.LastUpdatedAt,
		header.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", header.TransactionID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO transaction_lines (line_id, transaction_id, account_id, side, amount, currency_code, rate, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, line := range transaction.Lines {
		m := mapping.ToModelTransactionLine(line)
		batch.Queue(lineQuery,
			m.LineID,
			m.TransactionID,
			m.AccountID,
			m.Side,
			m.Amount,
			m.CurrencyCode,
			m.Rate,
			m.Notes,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range transaction.Lines {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert transaction lines for %s: %w", header.TransactionID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to flush transaction line batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

const transactionColumns = `transaction_id, occurred_at, memo, meta, idempotency_key, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OccurredAt,
		&m.Memo,
		&m.Meta,
		&m.IdempotencyKey,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const lineColumns = `line_id, transaction_id, account_id, side, amount, currency_code, rate, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanTransactionLine(row pgx.Row) (models.TransactionLine, error) {
	var m models.TransactionLine
	err := row.Scan(
		&m.LineID,
		&m.TransactionID,
		&m.AccountID,
		&m.Side,
		&m.Amount,
		&m.CurrencyCode,
		&m.Rate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindTransactionByID retrieves a transaction with its lines.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	headerQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	header, err := scanTransaction(r.Pool.QueryRow(ctx, headerQuery, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	lines, err := r.loadLines(ctx, []string{header.TransactionID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransaction(header, lines[header.TransactionID])
	return &d, nil
}

// FindTransactionByIdempotencyKey retrieves the transaction previously
// posted with the given key.
func (r *PgxTransactionRepository) FindTransactionByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	query := `SELECT transaction_id FROM transactions WHERE idempotency_key = $1;`
	var transactionID string
	if err := r.Pool.QueryRow(ctx, query, key).Scan(&transactionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by idempotency key: %w", err)
	}
	return r.FindTransactionByID(ctx, transactionID)
}

// ListTransactionsBetween retrieves transactions with OccurredAt in
// (start, end], with lines populated, optionally filtered by meta
// key/value pairs. A zero start leaves the window open on the left.
func (r *PgxTransactionRepository) ListTransactionsBetween(ctx context.Context, start, end time.Time, meta map[string]string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE occurred_at > $1 AND occurred_at <= $2`
	args := []any{start, end}
	if len(meta) > 0 {
		query += ` AND meta @> $3`
		args = append(args, meta)
	}
	query += ` ORDER BY occurred_at, transaction_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	headers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	if len(headers) == 0 {
		return []domain.Transaction{}, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.TransactionID
	}
	linesByTxn, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, len(headers))
	for i, h := range headers {
		transactions[i] = mapping.ToDomainTransaction(h, linesByTxn[h.TransactionID])
	}
	return transactions, nil
}

// ListAccountLines retrieves the ledger of one account: its lines with the
// parent transaction's OccurredAt in (start, end], paginated and ordered by
// occurrence time.
func (r *PgxTransactionRepository) ListAccountLines(ctx context.Context, accountID string, start, end time.Time, offset, limit int, order portsrepo.LedgerOrder) ([]domain.TransactionLine, error) {
	direction := "ASC"
	if order == portsrepo.LedgerOrderDesc {
		direction = "DESC"
	}
	query := `
		SELECT l.line_id, l.transaction_id, l.account_id, l.side, l.amount, l.currency_code, l.rate, l.notes,
		       l.created_at, l.created_by, l.last_updated_at, l.last_updated_by, t.occurred_at
		FROM transaction_lines l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		WHERE l.account_id = $1 AND t.occurred_at > $2 AND t.occurred_at <= $3
		ORDER BY t.occurred_at ` + direction + `, l.line_id ` + direction + `
		LIMIT $4 OFFSET $5;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, start, end, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query account lines: %w", err)
	}
	defer rows.Close()

	lines := make([]domain.TransactionLine, 0)
	for rows.Next() {
		var m models.TransactionLine
		var occurredAt time.Time
		err := rows.Scan(
			&m.LineID,
			&m.TransactionID,
			&m.AccountID,
			&m.Side,
			&m.Amount,
			&m.CurrencyCode,
			&m.Rate,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&occurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account line: %w", err)
		}
		lines = append(lines, mapping.ToDomainTransactionLine(m, occurredAt))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account lines: %w", err)
	}
	return lines, nil
}

// loadLines fetches all lines for the given transactions, grouped by
// transaction id. The parent's occurred_at is stamped during mapping.
func (r *PgxTransactionRepository) loadLines(ctx context.Context, transactionIDs []string) (map[string][]models.TransactionLine, error) {
	query := `SELECT ` + lineColumns + ` FROM transaction_lines WHERE transaction_id = ANY($1) ORDER BY line_id;`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction lines: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]models.TransactionLine, len(transactionIDs))
	for rows.Next() {
		m, err := scanTransactionLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction line: %w", err)
		}
		result[m.TransactionID] = append(result[m.TransactionID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction lines: %w", err)
	}
	return result, nil
}
