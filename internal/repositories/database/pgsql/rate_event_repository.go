package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	"github.com/avasiliev/fx_ledger_app/internal/models"
	"github.com/avasiliev/fx_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRateEventRepository struct {
	BaseRepository
}

// newPgxRateEventRepository creates a new repository for the exchange-rate
// audit log and its archive.
func newPgxRateEventRepository(pool *pgxpool.Pool) portsrepo.RateEventRepositoryFacade {
	return &PgxRateEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateEventRepositoryFacade = (*PgxRateEventRepository)(nil)

const rateEventColumns = `id, currency_code, rate, occurred_at, policy_applied, source`

func scanRateEvent(row pgx.Row) (models.RateEvent, error) {
	var m models.RateEvent
	err := row.Scan(
		&m.ID,
		&m.CurrencyCode,
		&m.Rate,
		&m.OccurredAt,
		&m.PolicyApplied,
		&m.Source,
	)
	return m, err
}

// AddEvent appends an audit event, returning its assigned id.
func (r *PgxRateEventRepository) AddEvent(ctx context.Context, event domain.RateEvent) (int64, error) {
	m := mapping.ToModelRateEvent(event)
	query := `
		INSERT INTO fx_rate_events (currency_code, rate, occurred_at, policy_applied, source)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query, m.CurrencyCode, m.Rate, m.OccurredAt, m.PolicyApplied, m.Source).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add rate event for %s: %w", m.CurrencyCode, err)
	}
	return id, nil
}

// ListEvents retrieves audit events newest-first, optionally filtered by
// currency code. limit <= 0 means no limit.
func (r *PgxRateEventRepository) ListEvents(ctx context.Context, currencyCode string, limit int) ([]domain.RateEvent, error) {
	query := `SELECT ` + rateEventColumns + ` FROM fx_rate_events`
	args := []any{}
	if currencyCode != "" {
		query += ` WHERE currency_code = $1`
		args = append(args, currencyCode)
	}
	query += ` ORDER BY occurred_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate events: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RateEvent, error) {
		return scanRateEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rate events: %w", err)
	}
	return mapping.ToDomainRateEventSlice(ms), nil
}

// ListOldEvents retrieves events with OccurredAt strictly before the
// cutoff, oldest-first, up to limit.
func (r *PgxRateEventRepository) ListOldEvents(ctx context.Context, cutoff time.Time, limit int) ([]domain.RateEvent, error) {
	query := `SELECT ` + rateEventColumns + ` FROM fx_rate_events WHERE occurred_at < $1 ORDER BY occurred_at, id LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query old rate events: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RateEvent, error) {
		return scanRateEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan old rate events: %w", err)
	}
	return mapping.ToDomainRateEventSlice(ms), nil
}

// DeleteEventsByIDs removes events by id, returning how many were deleted.
func (r *PgxRateEventRepository) DeleteEventsByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `DELETE FROM fx_rate_events WHERE id = ANY($1);`
	tag, err := r.Pool.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete rate events: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ArchiveEvents copies events into the archive table, returning how many
// were copied. Re-archiving an already archived id is a no-op.
func (r *PgxRateEventRepository) ArchiveEvents(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `
		INSERT INTO fx_rate_events_archive (id, currency_code, rate, occurred_at, policy_applied, source)
		SELECT id, currency_code, rate, occurred_at, policy_applied, source
		FROM fx_rate_events
		WHERE id = ANY($1)
		ON CONFLICT (id) DO NOTHING;
	`
	tag, err := r.Pool.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to archive rate events: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MoveEventsToArchive archives then deletes the given events as two
// separate commits, in that order. An interruption between the two can
// leave an event in both tables; the archive's ON CONFLICT makes a rerun
// converge, and no event is ever lost.
func (r *PgxRateEventRepository) MoveEventsToArchive(ctx context.Context, ids []int64) (int64, int64, error) {
	archived, err := r.ArchiveEvents(ctx, ids)
	if err != nil {
		return 0, 0, err
	}
	deleted, err := r.DeleteEventsByIDs(ctx, ids)
	if err != nil {
		return archived, 0, fmt.Errorf("archived %d events but delete failed: %w", archived, err)
	}
	return archived, deleted, nil
}
