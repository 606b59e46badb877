package mapping

import (
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/avasiliev/fx_ledger_app/internal/models"
)

// ToDomainBalanceCacheEntry converts a model BalanceCache to a domain BalanceCacheEntry
func ToDomainBalanceCacheEntry(m models.BalanceCache) domain.BalanceCacheEntry {
	return domain.BalanceCacheEntry{
		AccountID: m.AccountID,
		Amount:    m.Amount,
		LastTS:    m.LastTS,
	}
}
