package repositories

import (
	"context"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
)

// RateEventReader defines read operations for the exchange-rate audit log
type RateEventReader interface {
	// ListEvents retrieves audit events newest-first, optionally filtered by
	// currency code. limit <= 0 means no limit.
	ListEvents(ctx context.Context, currencyCode string, limit int) ([]domain.RateEvent, error)

	// ListOldEvents retrieves events with OccurredAt strictly before the
	// cutoff, oldest-first, up to limit.
	ListOldEvents(ctx context.Context, cutoff time.Time, limit int) ([]domain.RateEvent, error)
}

// RateEventWriter defines write operations for the exchange-rate audit log.
// The log is append-only: events are created and only ever removed by TTL
// housekeeping.
type RateEventWriter interface {
	// AddEvent appends an audit event, returning its assigned id.
	AddEvent(ctx context.Context, event domain.RateEvent) (int64, error)

	// DeleteEventsByIDs removes events by id, returning how many were deleted.
	DeleteEventsByIDs(ctx context.Context, ids []int64) (int64, error)

	// ArchiveEvents copies events into the archive store, returning how many
	// were copied. Re-archiving an already archived id is a no-op.
	ArchiveEvents(ctx context.Context, ids []int64) (int64, error)

	// MoveEventsToArchive archives then deletes the given events, in that
	// order, so an interruption can duplicate an archive row but never lose
	// one.
	MoveEventsToArchive(ctx context.Context, ids []int64) (archived int64, deleted int64, err error)
}

// RateEventRepositoryFacade combines all rate-event repository interfaces
type RateEventRepositoryFacade interface {
	RateEventReader
	RateEventWriter
}
