package repositories

import (
	"context"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
)

// LedgerOrder selects the ordering of ledger listings.
type LedgerOrder string

const (
	LedgerOrderAsc  LedgerOrder = "asc"
	LedgerOrderDesc LedgerOrder = "desc"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its lines.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionByIdempotencyKey retrieves the transaction previously
	// posted with the given key, or apperrors.ErrNotFound.
	FindTransactionByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error)

	// ListTransactionsBetween retrieves transactions with OccurredAt in
	// (start, end], with lines populated, optionally filtered by meta
	// key/value pairs.
	ListTransactionsBetween(ctx context.Context, start, end time.Time, meta map[string]string) ([]domain.Transaction, error)

	// ListAccountLines retrieves the ledger of one account: its transaction
	// lines with OccurredAt in (start, end], paginated and ordered by
	// occurrence time.
	ListAccountLines(ctx context.Context, accountID string, start, end time.Time, offset, limit int, order LedgerOrder) ([]domain.TransactionLine, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a transaction and all of its lines atomically.
	// A duplicate idempotency key fails with apperrors.ErrDuplicate and
	// leaves nothing written.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
