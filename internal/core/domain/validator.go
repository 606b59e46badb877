package domain

import (
	"fmt"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ErrUnbalanced fires when converted debits do not equal converted credits
// after money quantization. It is a business-rule failure, not an input
// validation failure, and wraps apperrors.ErrDomain.
var ErrUnbalanced = fmt.Errorf("%w: ledger entries do not balance after base conversion", apperrors.ErrDomain)

// ValidateBalanced enforces the double-entry balance invariant: the sum of
// debits converted to the base currency must equal the sum of credits
// converted to the base currency, after money quantization.
//
// baseCode selects the base currency explicitly; when empty the catalog's
// marked base is used. Entries denominated in the base currency skip rate
// multiplication entirely to avoid rounding drift on the dominant currency.
func ValidateBalanced(entries []LedgerEntry, currencies []Currency, baseCode string) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: no ledger entries to validate", apperrors.ErrValidation)
	}
	if len(currencies) == 0 {
		return fmt.Errorf("%w: currency catalog is empty", apperrors.ErrValidation)
	}

	var base *Currency
	if baseCode != "" {
		base = FindCurrency(currencies, baseCode)
		if base == nil {
			return fmt.Errorf("%w: base currency %s not found in catalog", apperrors.ErrValidation, baseCode)
		}
	} else {
		base = BaseCurrency(currencies)
		if base == nil {
			return fmt.Errorf("%w: no base currency defined in catalog", apperrors.ErrValidation)
		}
	}

	debitsInBase := decimal.Zero
	creditsInBase := decimal.Zero

	for _, entry := range entries {
		amountInBase, err := convertToBase(entry.Amount, entry.CurrencyCode, currencies, base)
		if err != nil {
			return err
		}
		if entry.Side == Debit {
			debitsInBase = debitsInBase.Add(amountInBase)
		} else {
			creditsInBase = creditsInBase.Add(amountInBase)
		}
	}

	debitTotal := QuantizeMoney(debitsInBase)
	creditTotal := QuantizeMoney(creditsInBase)
	if !debitTotal.Equal(creditTotal) {
		return fmt.Errorf("%w: debit total %s, credit total %s (base %s)",
			ErrUnbalanced, debitTotal.String(), creditTotal.String(), base.Code)
	}
	return nil
}

// convertToBase resolves an amount into the base currency. The base currency
// itself converts at identity.
func convertToBase(amount decimal.Decimal, currencyCode string, currencies []Currency, base *Currency) (decimal.Decimal, error) {
	if currencyCode == base.Code {
		return amount, nil
	}
	currency := FindCurrency(currencies, currencyCode)
	if currency == nil {
		return decimal.Zero, fmt.Errorf("%w: currency %s not found in catalog", apperrors.ErrValidation, currencyCode)
	}
	if currency.RateToBase == nil || currency.RateToBase.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: currency %s has no positive rate to base", apperrors.ErrValidation, currencyCode)
	}
	return amount.Mul(*currency.RateToBase), nil
}
