package mapping

import (
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/avasiliev/fx_ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction header to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		OccurredAt:     d.OccurredAt,
		Memo:           d.Memo,
		Meta:           d.Meta,
		IdempotencyKey: d.IdempotencyKey,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToModelTransactionLine converts a domain TransactionLine to a model TransactionLine
func ToModelTransactionLine(d domain.TransactionLine) models.TransactionLine {
	return models.TransactionLine{
		LineID:        d.LineID,
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Side:          string(d.Side),
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		Rate:          d.Rate,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction assembles a domain Transaction from its header and
// line rows. Line OccurredAt is copied from the header.
func ToDomainTransaction(m models.Transaction, lines []models.TransactionLine) domain.Transaction {
	d := domain.Transaction{
		TransactionID:  m.TransactionID,
		OccurredAt:     m.OccurredAt,
		Memo:           m.Memo,
		Meta:           m.Meta,
		IdempotencyKey: m.IdempotencyKey,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	d.Lines = make([]domain.TransactionLine, len(lines))
	for i, line := range lines {
		d.Lines[i] = ToDomainTransactionLine(line, m.OccurredAt)
	}
	return d
}

// ToDomainTransactionLine converts a model TransactionLine to a domain
// TransactionLine, stamping the parent transaction's occurrence time.
func ToDomainTransactionLine(m models.TransactionLine, occurredAt time.Time) domain.TransactionLine {
	return domain.TransactionLine{
		LineID:        m.LineID,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Side:          domain.EntrySide(m.Side),
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		Rate:          m.Rate,
		Notes:         m.Notes,
		OccurredAt:    occurredAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
