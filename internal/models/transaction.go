package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a journal entry header row.
type Transaction struct {
	TransactionID  string            `json:"transactionID"` // Primary Key (UUID)
	OccurredAt     time.Time         `json:"occurredAt"`
	Memo           string            `json:"memo"`
	Meta           map[string]string `json:"meta,omitempty"` // Stored as JSONB
	IdempotencyKey *string           `json:"idempotencyKey,omitempty"`
	AuditFields
}

// TransactionLine represents one debit/credit line row of a transaction.
type TransactionLine struct {
	LineID        string           `json:"lineID"` // Primary Key (UUID)
	TransactionID string           `json:"transactionID"`
	AccountID     string           `json:"accountID"`
	Side          string           `json:"side"` // DEBIT or CREDIT
	Amount        decimal.Decimal  `json:"amount"`
	CurrencyCode  string           `json:"currencyCode"`
	Rate          *decimal.Decimal `json:"rate,omitempty"`
	Notes         string           `json:"notes"`
	AuditFields
}
