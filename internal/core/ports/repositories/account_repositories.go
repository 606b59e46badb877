package repositories

import (
	"context"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByFullName retrieves an account by its hierarchical path.
	FindAccountByFullName(ctx context.Context, fullName string) (*domain.Account, error)

	// FindAccountsByFullNames retrieves multiple accounts keyed by full name.
	// Missing names are simply absent from the result map.
	FindAccountsByFullNames(ctx context.Context, fullNames []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts ordered by full name.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
