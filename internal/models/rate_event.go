package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateEvent represents one exchange-rate audit log row. The same shape
// backs both the live table and its archive.
type RateEvent struct {
	ID            int64           `json:"id"` // Primary Key (bigserial)
	CurrencyCode  string          `json:"currencyCode"`
	Rate          decimal.Decimal `json:"rate"`
	OccurredAt    time.Time       `json:"occurredAt"`
	PolicyApplied string          `json:"policyApplied"`
	Source        string          `json:"source"`
}
