package domain_test

import (
	"errors"
	"testing"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.Currency {
	return []domain.Currency{
		{Code: "USD", IsBase: true},
		{Code: "EUR", RateToBase: decimalPtr(decimal.RequireFromString("1.25"))},
		{Code: "JPY", RateToBase: decimalPtr(decimal.RequireFromString("0.0067"))},
	}
}

func entry(t *testing.T, side, amount, currency string) domain.LedgerEntry {
	t.Helper()
	e, err := domain.NewLedgerEntry(side, decimal.RequireFromString(amount), currency)
	require.NoError(t, err)
	return e
}

func TestValidateBalanced(t *testing.T) {
	tests := []struct {
		name     string
		entries  []domain.LedgerEntry
		baseCode string
		wantErr  error
	}{
		{
			name: "single currency balanced",
			entries: []domain.LedgerEntry{
				entry(t, "DEBIT", "100", "USD"),
				entry(t, "CREDIT", "100", "USD"),
			},
		},
		{
			name: "multi currency balanced via rate",
			entries: []domain.LedgerEntry{
				entry(t, "DEBIT", "100", "USD"),
				entry(t, "CREDIT", "80", "EUR"), // 80 * 1.25 = 100
			},
		},
		{
			name: "unbalanced raises domain error",
			entries: []domain.LedgerEntry{
				entry(t, "DEBIT", "100", "USD"),
				entry(t, "CREDIT", "99", "USD"),
			},
			wantErr: domain.ErrUnbalanced,
		},
		{
			name: "explicit base code",
			entries: []domain.LedgerEntry{
				entry(t, "DEBIT", "100", "USD"),
				entry(t, "CREDIT", "80", "EUR"),
			},
			baseCode: "USD",
		},
		{
			name: "unknown currency",
			entries: []domain.LedgerEntry{
				entry(t, "DEBIT", "100", "CHF"),
				entry(t, "CREDIT", "100", "USD"),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "unknown explicit base",
			entries: []domain.LedgerEntry{
				entry(t, "DEBIT", "100", "USD"),
				entry(t, "CREDIT", "100", "USD"),
			},
			baseCode: "CHF",
			wantErr:  apperrors.ErrValidation,
		},
		{
			name:    "empty entries",
			entries: []domain.LedgerEntry{},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateBalanced(tt.entries, testCatalog(), tt.baseCode)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBalanced_EmptyCatalog(t *testing.T) {
	err := domain.ValidateBalanced([]domain.LedgerEntry{entry(t, "DEBIT", "1", "USD")}, nil, "")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestValidateBalanced_NoBaseDefined(t *testing.T) {
	catalog := []domain.Currency{
		{Code: "USD"},
		{Code: "EUR", RateToBase: decimalPtr(decimal.RequireFromString("1.25"))},
	}
	err := domain.ValidateBalanced([]domain.LedgerEntry{
		entry(t, "DEBIT", "1", "USD"),
		entry(t, "CREDIT", "1", "USD"),
	}, catalog, "")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestValidateBalanced_MissingRate(t *testing.T) {
	catalog := []domain.Currency{
		{Code: "USD", IsBase: true},
		{Code: "EUR"}, // no rate
	}
	err := domain.ValidateBalanced([]domain.LedgerEntry{
		entry(t, "DEBIT", "100", "USD"),
		entry(t, "CREDIT", "80", "EUR"),
	}, catalog, "")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

// Quantization decides balance: converted sides that agree only after 2dp
// rounding still validate.
func TestValidateBalanced_QuantizationBoundary(t *testing.T) {
	catalog := []domain.Currency{
		{Code: "USD", IsBase: true},
		{Code: "EUR", RateToBase: decimalPtr(decimal.RequireFromString("1.333333"))},
	}
	err := domain.ValidateBalanced([]domain.LedgerEntry{
		entry(t, "DEBIT", "133.33", "USD"),
		entry(t, "CREDIT", "99.999999", "EUR"), // 99.999999 * 1.333333 = 133.333...
	}, catalog, "")
	assert.NoError(t, err)
}

func TestValidateBalanced_DomainNotValidation(t *testing.T) {
	err := domain.ValidateBalanced([]domain.LedgerEntry{
		entry(t, "DEBIT", "100", "USD"),
		entry(t, "CREDIT", "99", "USD"),
	}, testCatalog(), "")
	assert.True(t, errors.Is(err, apperrors.ErrDomain))
	assert.False(t, errors.Is(err, apperrors.ErrValidation))
}
