package services

import (
	"context"
	"fmt"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/avasiliev/fx_ledger_app/internal/core/ports/services"
)

// reportingService builds trading balance reports over posted ledger
// activity.
type reportingService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	currencyRepo    portsrepo.CurrencyRepositoryFacade
	clock           portssvc.Clock
}

// NewReportingService creates a new reporting service.
func NewReportingService(transactionRepo portsrepo.TransactionRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, clock portssvc.Clock) portssvc.ReportingSvcFacade {
	return &reportingService{
		transactionRepo: transactionRepo,
		currencyRepo:    currencyRepo,
		clock:           clock,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) TradingBalance(ctx context.Context, asOf time.Time) ([]domain.TradingBalanceRow, error) {
	entries, err := s.collectEntries(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return domain.AggregateTradingBalance(entries), nil
}

func (s *reportingService) TradingBalanceDetailed(ctx context.Context, baseCode string, asOf time.Time) ([]domain.TradingBalanceDetailedRow, error) {
	entries, err := s.collectEntries(ctx, asOf)
	if err != nil {
		return nil, err
	}
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency catalog: %w", err)
	}
	return domain.AggregateTradingBalanceInBase(entries, currencies, baseCode)
}

// collectEntries projects every transaction up to asOf into ledger entries.
func (s *reportingService) collectEntries(ctx context.Context, asOf time.Time) ([]domain.LedgerEntry, error) {
	if asOf.IsZero() {
		asOf = s.clock.Now()
	}
	transactions, err := s.transactionRepo.ListTransactionsBetween(ctx, time.Time{}, asOf.UTC(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	entries := make([]domain.LedgerEntry, 0)
	for i := range transactions {
		entries = append(entries, transactions[i].Entries()...)
	}
	return entries, nil
}
