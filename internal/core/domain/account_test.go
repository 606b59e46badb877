package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAccountFullName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple path", input: "Assets:Cash", want: "Assets:Cash"},
		{name: "single segment", input: "Equity", want: "Equity"},
		{name: "segments trimmed", input: " Assets : Cash ", want: "Assets:Cash"},
		{name: "empty", input: "", wantErr: true},
		{name: "leading colon", input: ":Assets", wantErr: true},
		{name: "trailing colon", input: "Assets:", wantErr: true},
		{name: "double colon", input: "Assets::Cash", wantErr: true},
		{name: "segment too long", input: strings.Repeat("a", 65), wantErr: true},
		{name: "too many segments", input: strings.Repeat("a:", 64) + "a", wantErr: true},
		{name: "total too long", input: strings.Repeat("abcdefgh:", 31) + "abcdefgh", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeAccountFullName(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidation), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAccount(t *testing.T) {
	acc, err := domain.NewAccount("acc-1", "Assets:Cash", "usd")
	require.NoError(t, err)
	assert.Equal(t, "Assets:Cash", acc.FullName)
	assert.Equal(t, "USD", acc.CurrencyCode)

	_, err = domain.NewAccount("acc-2", "Assets::Cash", "USD")
	assert.Error(t, err)

	_, err = domain.NewAccount("acc-3", "Assets:Cash", "X")
	assert.Error(t, err)
}
