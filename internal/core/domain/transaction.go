package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionLine is one persisted debit/credit line of a transaction,
// bound to an account. An optional explicit Rate on a line updates the
// currency catalog when the transaction posts.
type TransactionLine struct {
	LineID          string           `json:"lineID"` // Primary key (UUID)
	TransactionID   string           `json:"transactionID"`
	AccountID       string           `json:"accountID"`
	AccountFullName string           `json:"accountFullName"`
	Side            EntrySide        `json:"side"`
	Amount          decimal.Decimal  `json:"amount"`
	CurrencyCode    string           `json:"currencyCode"`
	Rate            *decimal.Decimal `json:"rate,omitempty"` // explicit rate to base carried on the line
	Notes           string           `json:"notes"`
	OccurredAt      time.Time        `json:"occurredAt"` // copied from the parent transaction on reads
	AuditFields
}

// Transaction is a posted, immutable journal entry. Its lines balance
// across currencies once converted to the base currency.
type Transaction struct {
	TransactionID  string            `json:"transactionID"` // Primary key (UUID)
	OccurredAt     time.Time         `json:"occurredAt"`
	Memo           string            `json:"memo"`
	Meta           map[string]string `json:"meta,omitempty"`
	IdempotencyKey *string           `json:"idempotencyKey,omitempty"`
	Lines          []TransactionLine `json:"lines,omitempty"`
	AuditFields
}

// Entries projects the transaction's lines into validated-shape ledger
// entries for aggregation and balance checking.
func (t *Transaction) Entries() []LedgerEntry {
	entries := make([]LedgerEntry, len(t.Lines))
	for i, line := range t.Lines {
		entries[i] = LedgerEntry{Side: line.Side, Amount: line.Amount, CurrencyCode: line.CurrencyCode}
	}
	return entries
}

// NetDeltas returns the per-account balance effect of the transaction:
// debit amounts added, credit amounts subtracted, in account currency.
func (t *Transaction) NetDeltas() map[string]decimal.Decimal {
	deltas := make(map[string]decimal.Decimal)
	for _, line := range t.Lines {
		amount := line.Amount
		if line.Side == Credit {
			amount = amount.Neg()
		}
		deltas[line.AccountID] = deltas[line.AccountID].Add(amount)
	}
	return deltas
}
