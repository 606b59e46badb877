package domain

import (
	"fmt"
	"strings"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EntrySide indicates whether a ledger entry is a Debit or a Credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// ParseEntrySide accepts a side case-insensitively, failing with
// ErrValidation on anything other than DEBIT or CREDIT.
func ParseEntrySide(side string) (EntrySide, error) {
	switch strings.ToUpper(strings.TrimSpace(side)) {
	case string(Debit):
		return Debit, nil
	case string(Credit):
		return Credit, nil
	default:
		return "", fmt.Errorf("%w: entry side must be DEBIT or CREDIT, got %q", apperrors.ErrValidation, side)
	}
}

// LedgerEntry is one validated debit/credit line: a side, a positive amount
// and a normalized currency code.
type LedgerEntry struct {
	Side         EntrySide       `json:"side"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// NewLedgerEntry validates and builds a LedgerEntry. The amount must be
// strictly positive and the currency code is normalized and length-checked.
func NewLedgerEntry(side string, amount decimal.Decimal, currencyCode string) (LedgerEntry, error) {
	parsedSide, err := ParseEntrySide(side)
	if err != nil {
		return LedgerEntry{}, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return LedgerEntry{}, fmt.Errorf("%w: entry amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	code, err := NormalizeCurrencyCode(currencyCode)
	if err != nil {
		return LedgerEntry{}, err
	}
	return LedgerEntry{Side: parsedSide, Amount: amount, CurrencyCode: code}, nil
}
