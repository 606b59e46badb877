package dto

import (
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingLineRequest is one debit/credit line of a posting request. An
// optional Rate carries an explicit exchange rate that updates the currency
// catalog when the transaction posts.
type PostingLineRequest struct {
	AccountFullName string           `json:"accountFullName" binding:"required"`
	Side            string           `json:"side" binding:"required"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode    string           `json:"currencyCode" binding:"required,min=3,max=10"`
	Rate            *decimal.Decimal `json:"rate,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// PostTransactionRequest defines the payload for posting a journal entry.
type PostTransactionRequest struct {
	Lines          []PostingLineRequest `json:"lines" binding:"required,min=1,dive"`
	Memo           string               `json:"memo,omitempty"`
	Meta           map[string]string    `json:"meta,omitempty"`
	IdempotencyKey *string              `json:"idempotencyKey,omitempty"`
	OccurredAt     *time.Time           `json:"occurredAt,omitempty"`
}

// TransactionLineResponse defines the data returned for one posted line.
type TransactionLineResponse struct {
	LineID          string           `json:"lineID"`
	AccountFullName string           `json:"accountFullName"`
	Side            string           `json:"side"`
	Amount          decimal.Decimal  `json:"amount"`
	CurrencyCode    string           `json:"currencyCode"`
	Rate            *decimal.Decimal `json:"rate,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// TransactionResponse defines the data returned for a posted transaction.
type TransactionResponse struct {
	TransactionID  string                    `json:"transactionID"`
	OccurredAt     time.Time                 `json:"occurredAt"`
	Memo           string                    `json:"memo,omitempty"`
	Meta           map[string]string         `json:"meta,omitempty"`
	IdempotencyKey *string                   `json:"idempotencyKey,omitempty"`
	Lines          []TransactionLineResponse `json:"lines"`
	CreatedAt      time.Time                 `json:"createdAt"`
	CreatedBy      string                    `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	lines := make([]TransactionLineResponse, len(t.Lines))
	for i, line := range t.Lines {
		lines[i] = TransactionLineResponse{
			LineID:          line.LineID,
			AccountFullName: line.AccountFullName,
			Side:            string(line.Side),
			Amount:          line.Amount,
			CurrencyCode:    line.CurrencyCode,
			Rate:            line.Rate,
			Notes:           line.Notes,
		}
	}
	return TransactionResponse{
		TransactionID:  t.TransactionID,
		OccurredAt:     t.OccurredAt,
		Memo:           t.Memo,
		Meta:           t.Meta,
		IdempotencyKey: t.IdempotencyKey,
		Lines:          lines,
		CreatedAt:      t.CreatedAt,
		CreatedBy:      t.CreatedBy,
	}
}

// LedgerLineResponse defines one row of an account ledger listing.
type LedgerLineResponse struct {
	LineID        string          `json:"lineID"`
	TransactionID string          `json:"transactionID"`
	Side          string          `json:"side"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Notes         string          `json:"notes,omitempty"`
}

// ToLedgerLineResponses converts domain transaction lines to ledger rows.
func ToLedgerLineResponses(lines []domain.TransactionLine) []LedgerLineResponse {
	responses := make([]LedgerLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = LedgerLineResponse{
			LineID:        line.LineID,
			TransactionID: line.TransactionID,
			Side:          string(line.Side),
			Amount:        line.Amount,
			CurrencyCode:  line.CurrencyCode,
			OccurredAt:    line.OccurredAt,
			Notes:         line.Notes,
		}
	}
	return responses
}
