package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceCache represents the cached running balance row for one account.
type BalanceCache struct {
	AccountID string          `json:"accountID"` // Primary Key
	Amount    decimal.Decimal `json:"amount"`
	LastTS    time.Time       `json:"lastTS"`
}
