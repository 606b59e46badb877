package domain

import (
	"fmt"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	// MoneyPrecision is the number of fractional digits kept for monetary amounts.
	MoneyPrecision int32 = 2
	// RatePrecision is the number of fractional digits kept for exchange rates.
	RatePrecision int32 = 6
)

// QuantizeMoney rounds a monetary amount to MoneyPrecision fractional digits
// using round-half-to-even (banker's rounding). The operation is idempotent
// and never touches any shared rounding state.
func QuantizeMoney(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(MoneyPrecision)
}

// QuantizeRate rounds an exchange rate to RatePrecision fractional digits
// using round-half-to-even.
func QuantizeRate(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(RatePrecision)
}

// ParseAmount coerces a string into a decimal, failing with ErrValidation
// on anything decimal.NewFromString cannot parse.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid decimal amount %q", apperrors.ErrValidation, s)
	}
	return d, nil
}
