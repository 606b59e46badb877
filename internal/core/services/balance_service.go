package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/avasiliev/fx_ledger_app/internal/core/ports/services"
	"github.com/avasiliev/fx_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// balancePageSize bounds one ledger page during balance recomputation.
const balancePageSize = 500

// balanceService maintains per-account running balances over a pluggable
// cache store (in-memory, postgres or redis). A query takes one of three
// paths: serve straight from cache, fold the lines since the cached
// timestamp in, or rebuild from full history.
type balanceService struct {
	balanceRepo     portsrepo.BalanceRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	clock           portssvc.Clock
}

// NewBalanceService creates a new balance cache service.
func NewBalanceService(balanceRepo portsrepo.BalanceRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade, clock portssvc.Clock) portssvc.BalanceSvcFacade {
	return &balanceService{
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) ProcessTransaction(ctx context.Context, transaction *domain.Transaction) error {
	for accountID, delta := range transaction.NetDeltas() {
		if err := s.balanceRepo.ApplyDelta(ctx, accountID, delta, transaction.OccurredAt); err != nil {
			return fmt.Errorf("failed to apply balance delta for account %s: %w", accountID, err)
		}
	}
	return nil
}

func (s *balanceService) GetBalance(ctx context.Context, account *domain.Account, asOf time.Time, recompute bool) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if account == nil {
		return decimal.Zero, fmt.Errorf("%w: account is required for balance lookup", apperrors.ErrValidation)
	}
	if asOf.IsZero() {
		asOf = s.clock.Now()
	}
	asOf = asOf.UTC()

	cached, err := s.balanceRepo.GetCache(ctx, account.AccountID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, fmt.Errorf("failed to read balance cache for %s: %w", account.AccountID, err)
	}

	if recompute || cached == nil {
		amount, err := s.sumLines(ctx, account.AccountID, time.Time{}, asOf)
		if err != nil {
			return decimal.Zero, err
		}
		// A rebuild only refreshes the cache when it would not move the
		// cached timestamp backwards.
		if cached == nil || !cached.LastTS.After(asOf) {
			if err := s.balanceRepo.UpsertCache(ctx, account.AccountID, amount, asOf); err != nil {
				logger.Warn("Failed to refresh balance cache", slog.String("account_id", account.AccountID), slog.String("error", err.Error()))
			}
		}
		return domain.QuantizeMoney(amount), nil
	}

	// Cache exactly at asOf answers directly, no ledger round-trip.
	if cached.LastTS.Equal(asOf) {
		return domain.QuantizeMoney(cached.Amount), nil
	}

	// Historical query behind the cache: compute from history, leave the
	// cache alone.
	if cached.LastTS.After(asOf) {
		amount, err := s.sumLines(ctx, account.AccountID, time.Time{}, asOf)
		if err != nil {
			return decimal.Zero, err
		}
		return domain.QuantizeMoney(amount), nil
	}

	// Incremental path: cached amount plus the lines in (LastTS, asOf].
	delta, err := s.sumLines(ctx, account.AccountID, cached.LastTS, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	amount := cached.Amount.Add(delta)
	if err := s.balanceRepo.UpsertCache(ctx, account.AccountID, amount, asOf); err != nil {
		logger.Warn("Failed to advance balance cache", slog.String("account_id", account.AccountID), slog.String("error", err.Error()))
	}
	return domain.QuantizeMoney(amount), nil
}

// sumLines folds an account's signed line amounts over (start, end],
// paging through the ledger. Debits add, credits subtract.
func (s *balanceService) sumLines(ctx context.Context, accountID string, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	offset := 0
	for {
		lines, err := s.transactionRepo.ListAccountLines(ctx, accountID, start, end, offset, balancePageSize, portsrepo.LedgerOrderAsc)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to page ledger for account %s: %w", accountID, err)
		}
		for _, line := range lines {
			if line.Side == domain.Debit {
				total = total.Add(line.Amount)
			} else {
				total = total.Sub(line.Amount)
			}
		}
		if len(lines) < balancePageSize {
			return total, nil
		}
		offset += balancePageSize
	}
}
