package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/avasiliev/fx_ledger_app/internal/core/ports/services"
	"github.com/avasiliev/fx_ledger_app/internal/dto"
	"github.com/avasiliev/fx_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// RateSourceManual marks audit events born from a direct rate update, as
// opposed to rates carried on posting lines.
const RateSourceManual = "manual"

// currencyService maintains the currency catalog and its single-base
// invariant, appending an audit event for every rate change.
type currencyService struct {
	currencyRepo  portsrepo.CurrencyRepositoryFacade
	rateEventRepo portsrepo.RateEventRepositoryFacade
	clock         portssvc.Clock
}

// NewCurrencyService creates a new currency catalog service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, rateEventRepo portsrepo.RateEventRepositoryFacade, clock portssvc.Clock) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo:  currencyRepo,
		rateEventRepo: rateEventRepo,
		clock:         clock,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creator string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	currency, err := domain.NewCurrency(req.Code, req.IsBase, req.RateToBase)
	if err != nil {
		return nil, err
	}

	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, currency.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check currency %s: %w", currency.Code, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: currency %s already exists", apperrors.ErrDuplicate, currency.Code)
	}

	now := s.clock.Now()
	currency.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creator,
		LastUpdatedAt: now,
		LastUpdatedBy: creator,
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		logger.Error("Failed to save currency", slog.String("code", currency.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create currency %s: %w", currency.Code, err)
	}

	// A currency created as base demotes whatever was base before it.
	if currency.IsBase {
		if err := s.currencyRepo.SetBaseCurrency(ctx, currency.Code, creator); err != nil {
			logger.Error("Failed to mark new currency as base", slog.String("code", currency.Code), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to mark %s as base: %w", currency.Code, err)
		}
	}

	logger.Info("Currency created", slog.String("code", currency.Code), slog.Bool("is_base", currency.IsBase))
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	normalized, err := domain.NormalizeCurrencyCode(code)
	if err != nil {
		return nil, err
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", normalized, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) SetBaseCurrency(ctx context.Context, code string, updater string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	// EnsureSingleBase both validates the target exists and computes the
	// catalog's post-switch shape; the repository write mirrors it.
	base, err := domain.EnsureSingleBase(currencies, code)
	if err != nil {
		return nil, err
	}

	if err := s.currencyRepo.SetBaseCurrency(ctx, base.Code, updater); err != nil {
		logger.Error("Failed to set base currency", slog.String("code", base.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to set base currency %s: %w", base.Code, err)
	}

	logger.Info("Base currency changed", slog.String("code", base.Code))
	return base, nil
}

func (s *currencyService) UpdateRate(ctx context.Context, code string, rate decimal.Decimal, updater string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	normalized, err := domain.NormalizeCurrencyCode(code)
	if err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", normalized, err)
	}
	if currency.IsBase {
		return nil, fmt.Errorf("%w: base currency %s has rate 1 by definition", apperrors.ErrValidation, currency.Code)
	}

	if err := currency.SetRate(rate); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	currency.LastUpdatedAt = now
	currency.LastUpdatedBy = updater

	if err := s.currencyRepo.SaveCurrency(ctx, *currency); err != nil {
		logger.Error("Failed to update rate", slog.String("code", currency.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update rate for %s: %w", currency.Code, err)
	}

	event := domain.RateEvent{
		CurrencyCode:  currency.Code,
		Rate:          *currency.RateToBase,
		OccurredAt:    now,
		PolicyApplied: RateSourceManual,
		Source:        updater,
	}
	if _, err := s.rateEventRepo.AddEvent(ctx, event); err != nil {
		// The rate itself is durable; a lost audit row is logged, not fatal.
		logger.Error("Failed to record rate audit event", slog.String("code", currency.Code), slog.String("error", err.Error()))
	}

	logger.Info("Rate updated", slog.String("code", currency.Code), slog.String("rate", currency.RateToBase.String()))
	return currency, nil
}

func (s *currencyService) ListRateEvents(ctx context.Context, code string, limit int) ([]domain.RateEvent, error) {
	normalized := ""
	if code != "" {
		var err error
		normalized, err = domain.NormalizeCurrencyCode(code)
		if err != nil {
			return nil, err
		}
	}
	events, err := s.rateEventRepo.ListEvents(ctx, normalized, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate events: %w", err)
	}
	if events == nil {
		return []domain.RateEvent{}, nil
	}
	return events, nil
}
