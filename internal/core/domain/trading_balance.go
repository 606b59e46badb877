package domain

import (
	"fmt"
	"sort"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TradingBalanceRow is the raw per-currency aggregate of ledger activity,
// with no conversion applied.
type TradingBalanceRow struct {
	CurrencyCode string          `json:"currencyCode"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Net          decimal.Decimal `json:"net"` // debit - credit
}

// TradingBalanceDetailedRow extends the raw aggregate with base-converted
// totals and the rate used for the conversion, recorded for transparency.
type TradingBalanceDetailedRow struct {
	TradingBalanceRow
	UsedRate   decimal.Decimal `json:"usedRate"`
	DebitBase  decimal.Decimal `json:"debitBase"`
	CreditBase decimal.Decimal `json:"creditBase"`
	NetBase    decimal.Decimal `json:"netBase"`
}

type rawSum struct {
	debit  decimal.Decimal
	credit decimal.Decimal
}

// rawSums accumulates unquantized debit/credit sums per currency code in a
// single pass. Quantization happens once at the end, not per line, to keep
// cumulative rounding error down.
func rawSums(entries []LedgerEntry) (map[string]*rawSum, []string) {
	sums := make(map[string]*rawSum)
	for _, entry := range entries {
		sum, ok := sums[entry.CurrencyCode]
		if !ok {
			sum = &rawSum{debit: decimal.Zero, credit: decimal.Zero}
			sums[entry.CurrencyCode] = sum
		}
		if entry.Side == Debit {
			sum.debit = sum.debit.Add(entry.Amount)
		} else {
			sum.credit = sum.credit.Add(entry.Amount)
		}
	}
	codes := make([]string, 0, len(sums))
	for code := range sums {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return sums, codes
}

// AggregateTradingBalance aggregates entries by currency with no conversion.
// Output is sorted by currency code ascending; empty input yields an empty
// slice.
func AggregateTradingBalance(entries []LedgerEntry) []TradingBalanceRow {
	sums, codes := rawSums(entries)
	rows := make([]TradingBalanceRow, 0, len(codes))
	for _, code := range codes {
		sum := sums[code]
		rows = append(rows, TradingBalanceRow{
			CurrencyCode: code,
			Debit:        QuantizeMoney(sum.debit),
			Credit:       QuantizeMoney(sum.credit),
			Net:          QuantizeMoney(sum.debit.Sub(sum.credit)),
		})
	}
	return rows
}

// AggregateTradingBalanceInBase aggregates entries by currency and converts
// each aggregate to the base currency. The unquantized raw sums are
// multiplied by the rate before the final money quantization; multiplying
// already-quantized totals would double-round. The base currency converts
// at rate 1.
func AggregateTradingBalanceInBase(entries []LedgerEntry, currencies []Currency, baseCode string) ([]TradingBalanceDetailedRow, error) {
	if len(entries) == 0 {
		return []TradingBalanceDetailedRow{}, nil
	}

	var base *Currency
	if baseCode != "" {
		base = FindCurrency(currencies, baseCode)
		if base == nil {
			return nil, fmt.Errorf("%w: base currency %s not found in catalog", apperrors.ErrValidation, baseCode)
		}
	} else {
		base = BaseCurrency(currencies)
		if base == nil {
			return nil, fmt.Errorf("%w: no base currency defined in catalog", apperrors.ErrValidation)
		}
	}

	sums, codes := rawSums(entries)
	rows := make([]TradingBalanceDetailedRow, 0, len(codes))
	for _, code := range codes {
		sum := sums[code]

		rate := decimal.NewFromInt(1)
		if code != base.Code {
			currency := FindCurrency(currencies, code)
			if currency == nil {
				return nil, fmt.Errorf("%w: currency %s not found in catalog", apperrors.ErrValidation, code)
			}
			if currency.RateToBase == nil || currency.RateToBase.LessThanOrEqual(decimal.Zero) {
				return nil, fmt.Errorf("%w: currency %s has no positive rate to base", apperrors.ErrValidation, code)
			}
			rate = *currency.RateToBase
		}
		usedRate := QuantizeRate(rate)

		rows = append(rows, TradingBalanceDetailedRow{
			TradingBalanceRow: TradingBalanceRow{
				CurrencyCode: code,
				Debit:        QuantizeMoney(sum.debit),
				Credit:       QuantizeMoney(sum.credit),
				Net:          QuantizeMoney(sum.debit.Sub(sum.credit)),
			},
			UsedRate:   usedRate,
			DebitBase:  QuantizeMoney(sum.debit.Mul(rate)),
			CreditBase: QuantizeMoney(sum.credit.Mul(rate)),
			NetBase:    QuantizeMoney(sum.debit.Sub(sum.credit).Mul(rate)),
		})
	}
	return rows, nil
}
