package domain

import (
	"fmt"
	"strings"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	minCurrencyCodeLen = 3
	maxCurrencyCodeLen = 10
)

// Currency represents a tradable unit in the catalog. Exactly one currency
// in a catalog is the base; all other amounts convert to it through
// RateToBase. The base currency carries no rate (implicitly 1).
type Currency struct {
	Code       string           `json:"code"`
	IsBase     bool             `json:"isBase"`
	RateToBase *decimal.Decimal `json:"rateToBase,omitempty"` // nil for the base currency
	AuditFields
}

// NormalizeCurrencyCode trims and upper-cases a currency code, failing with
// ErrValidation when the result is outside the 3..10 character range.
func NormalizeCurrencyCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) < minCurrencyCodeLen || len(normalized) > maxCurrencyCodeLen {
		return "", fmt.Errorf("%w: currency code must be %d-%d characters, got %q",
			apperrors.ErrValidation, minCurrencyCodeLen, maxCurrencyCodeLen, code)
	}
	return normalized, nil
}

// NewCurrency validates and builds a Currency. A supplied rate is quantized
// to rate precision and must be positive. The base currency must not carry
// a rate.
func NewCurrency(code string, isBase bool, rateToBase *decimal.Decimal) (Currency, error) {
	normalized, err := NormalizeCurrencyCode(code)
	if err != nil {
		return Currency{}, err
	}
	c := Currency{Code: normalized, IsBase: isBase}
	if rateToBase != nil {
		if isBase {
			return Currency{}, fmt.Errorf("%w: base currency %s must not carry a rate", apperrors.ErrValidation, normalized)
		}
		if err := c.SetRate(*rateToBase); err != nil {
			return Currency{}, err
		}
	}
	return c, nil
}

// SetRate quantizes and stores a new rate to base, rejecting non-positive values.
func (c *Currency) SetRate(rate decimal.Decimal) error {
	quantized := QuantizeRate(rate)
	if quantized.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: rate for %s must be positive, got %s", apperrors.ErrValidation, c.Code, rate.String())
	}
	c.RateToBase = &quantized
	return nil
}

// EnsureSingleBase marks the currency matching targetCode (case-insensitive)
// as the base and unmarks all others, returning a pointer to the new base.
// Switching a currency to base drops its stored rate; its rate is 1 by
// definition. Fails with ErrValidation when targetCode is absent.
func EnsureSingleBase(currencies []Currency, targetCode string) (*Currency, error) {
	normalized, err := NormalizeCurrencyCode(targetCode)
	if err != nil {
		return nil, err
	}
	var base *Currency
	for i := range currencies {
		if currencies[i].Code == normalized {
			currencies[i].IsBase = true
			currencies[i].RateToBase = nil
			base = &currencies[i]
		} else {
			currencies[i].IsBase = false
		}
	}
	if base == nil {
		return nil, fmt.Errorf("%w: currency %s not found in catalog", apperrors.ErrValidation, normalized)
	}
	return base, nil
}

// BaseCurrency returns the currency marked as base, or nil when the catalog
// has no base defined. Callers must treat nil as "base undefined" and fail
// fast instead of defaulting silently.
func BaseCurrency(currencies []Currency) *Currency {
	for i := range currencies {
		if currencies[i].IsBase {
			return &currencies[i]
		}
	}
	return nil
}

// FindCurrency locates a currency by code (case-insensitive) in a catalog.
func FindCurrency(currencies []Currency, code string) *Currency {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for i := range currencies {
		if currencies[i].Code == normalized {
			return &currencies[i]
		}
	}
	return nil
}
