package services

import (
	"context"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	"github.com/avasiliev/fx_ledger_app/internal/dto"
)

// AccountSvcFacade defines the ledger account operations.
type AccountSvcFacade interface {
	// CreateAccount validates and persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creator string) (*domain.Account, error)

	// GetAccountByFullName retrieves an account by its hierarchical path.
	GetAccountByFullName(ctx context.Context, fullName string) (*domain.Account, error)

	// ListAccounts retrieves accounts ordered by full name.
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)

	// GetAccountLedger retrieves a paginated ledger of one account's lines
	// within a time window.
	GetAccountLedger(ctx context.Context, fullName string, start, end time.Time, offset, limit int, order portsrepo.LedgerOrder) ([]domain.TransactionLine, error)
}
