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

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestNewCurrency(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		isBase  bool
		rate    *decimal.Decimal
		wantErr bool
	}{
		{name: "valid base", code: "USD", isBase: true, wantErr: false},
		{name: "valid non-base with rate", code: "eur", rate: decimalPtr(decimal.RequireFromString("1.25")), wantErr: false},
		{name: "code too short", code: "US", wantErr: true},
		{name: "code too long", code: "ABCDEFGHIJK", wantErr: true},
		{name: "zero rate", code: "EUR", rate: decimalPtr(decimal.Zero), wantErr: true},
		{name: "negative rate", code: "EUR", rate: decimalPtr(decimal.RequireFromString("-1")), wantErr: true},
		{name: "base with rate", code: "USD", isBase: true, rate: decimalPtr(decimal.RequireFromString("1")), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := domain.NewCurrency(tt.code, tt.isBase, tt.rate)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.isBase, c.IsBase)
			}
		})
	}
}

func TestNewCurrency_NormalizesCode(t *testing.T) {
	c, err := domain.NewCurrency("  usd ", true, nil)
	require.NoError(t, err)
	assert.Equal(t, "USD", c.Code)
}

func TestCurrency_SetRate_Quantizes(t *testing.T) {
	c, err := domain.NewCurrency("EUR", false, nil)
	require.NoError(t, err)

	require.NoError(t, c.SetRate(decimal.RequireFromString("1.23456789")))
	require.NotNil(t, c.RateToBase)
	assert.Equal(t, "1.234568", c.RateToBase.String())

	assert.Error(t, c.SetRate(decimal.Zero))
}

func TestEnsureSingleBase(t *testing.T) {
	catalog := []domain.Currency{
		{Code: "USD", IsBase: true},
		{Code: "EUR", RateToBase: decimalPtr(decimal.RequireFromString("1.25"))},
		{Code: "GBP", RateToBase: decimalPtr(decimal.RequireFromString("1.5"))},
	}

	base, err := domain.EnsureSingleBase(catalog, "eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", base.Code)
	assert.Nil(t, base.RateToBase)

	baseCount := 0
	for _, c := range catalog {
		if c.IsBase {
			baseCount++
			assert.Equal(t, "EUR", c.Code)
		}
	}
	assert.Equal(t, 1, baseCount)

	// Idempotent: calling again with the same code changes nothing.
	base, err = domain.EnsureSingleBase(catalog, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", base.Code)
	baseCount = 0
	for _, c := range catalog {
		if c.IsBase {
			baseCount++
		}
	}
	assert.Equal(t, 1, baseCount)
}

func TestEnsureSingleBase_UnknownCode(t *testing.T) {
	catalog := []domain.Currency{{Code: "USD", IsBase: true}}
	_, err := domain.EnsureSingleBase(catalog, "JPY")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestBaseCurrency(t *testing.T) {
	assert.Nil(t, domain.BaseCurrency([]domain.Currency{{Code: "USD"}, {Code: "EUR"}}))

	catalog := []domain.Currency{{Code: "USD"}, {Code: "EUR", IsBase: true}}
	base := domain.BaseCurrency(catalog)
	require.NotNil(t, base)
	assert.Equal(t, "EUR", base.Code)
}
