package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceCacheEntry is the cached running balance for one account. Amount
// reflects every transaction with OccurredAt <= LastTS.
type BalanceCacheEntry struct {
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
	LastTS    time.Time       `json:"lastTS"`
}
