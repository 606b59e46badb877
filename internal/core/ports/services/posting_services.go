package services

import (
	"context"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/avasiliev/fx_ledger_app/internal/dto"
)

// PostingSvcFacade defines the posting orchestration: validate a line set
// against the double-entry invariant and persist it atomically.
type PostingSvcFacade interface {
	// PostTransaction validates and persists a journal entry. When the
	// request carries an idempotency key already seen, the original
	// transaction is returned instead of creating a duplicate.
	PostTransaction(ctx context.Context, req dto.PostTransactionRequest, creator string) (*domain.Transaction, error)

	// GetTransactionByID retrieves a posted transaction with its lines.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}
