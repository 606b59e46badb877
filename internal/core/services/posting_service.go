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
	"github.com/avasiliev/fx_ledger_app/internal/dto"
	"github.com/avasiliev/fx_ledger_app/internal/middleware"
	"github.com/avasiliev/fx_ledger_app/internal/platform/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateSourcePosting marks audit events born from explicit rates carried on
// posting lines.
const RateSourcePosting = "posting"

// postingService orchestrates journal posting: validate the line set
// against the double-entry invariant, persist atomically, then fold the
// transaction into the balance cache and apply any explicit rate updates.
type postingService struct {
	accountRepo     portsrepo.AccountRepositoryFacade
	currencyRepo    portsrepo.CurrencyRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	rateEventRepo   portsrepo.RateEventRepositoryFacade
	balanceSvc      portssvc.BalanceSvcFacade
	clock           portssvc.Clock
	ratePolicy      string
}

// NewPostingService creates a new posting service. balanceSvc may be nil
// when no balance cache is maintained.
func NewPostingService(
	accountRepo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	rateEventRepo portsrepo.RateEventRepositoryFacade,
	balanceSvc portssvc.BalanceSvcFacade,
	clock portssvc.Clock,
	ratePolicy string,
) portssvc.PostingSvcFacade {
	return &postingService{
		accountRepo:     accountRepo,
		currencyRepo:    currencyRepo,
		transactionRepo: transactionRepo,
		rateEventRepo:   rateEventRepo,
		balanceSvc:      balanceSvc,
		clock:           clock,
		ratePolicy:      ratePolicy,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

func (s *postingService) PostTransaction(ctx context.Context, req dto.PostTransactionRequest, creator string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: transaction must have at least one line", apperrors.ErrValidation)
	}

	// Idempotent replay returns the original transaction untouched.
	if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
		original, err := s.transactionRepo.FindTransactionByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err == nil {
			logger.Info("Idempotent replay of posting", slog.String("transaction_id", original.TransactionID), slog.String("idempotency_key", *req.IdempotencyKey))
			return original, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check idempotency key: %w", err)
		}
	}

	lines, err := s.buildLines(req.Lines)
	if err != nil {
		return nil, err
	}

	if err := s.resolveAccounts(ctx, lines); err != nil {
		return nil, err
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency catalog: %w", err)
	}

	if err := resolveCurrencies(lines, currencies); err != nil {
		return nil, err
	}

	// Explicit rates carried on lines take effect for this posting's own
	// balance check, so a posting can introduce a rate and use it at once.
	pendingRates, err := s.resolveRateUpdates(lines, currencies)
	if err != nil {
		return nil, err
	}
	effective := applyPendingRates(currencies, pendingRates)

	transaction := domain.Transaction{
		TransactionID:  uuid.NewString(),
		Memo:           req.Memo,
		Meta:           req.Meta,
		IdempotencyKey: req.IdempotencyKey,
		Lines:          lines,
	}
	if err := domain.ValidateBalanced(transaction.Entries(), effective, ""); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}
	transaction.OccurredAt = occurredAt
	transaction.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creator,
		LastUpdatedAt: now,
		LastUpdatedBy: creator,
	}
	for i := range transaction.Lines {
		transaction.Lines[i].LineID = uuid.NewString()
		transaction.Lines[i].TransactionID = transaction.TransactionID
		transaction.Lines[i].OccurredAt = occurredAt
		transaction.Lines[i].AuditFields = transaction.AuditFields
	}

	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		// Two postings raced on the same idempotency key; the loser adopts
		// the winner's transaction.
		if errors.Is(err, apperrors.ErrDuplicate) && req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
			original, findErr := s.transactionRepo.FindTransactionByIdempotencyKey(ctx, *req.IdempotencyKey)
			if findErr == nil {
				logger.Info("Idempotency race resolved to original transaction", slog.String("transaction_id", original.TransactionID))
				return original, nil
			}
		}
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	// The posting is durable from here on. Cache and rate follow-ups are
	// recoverable (the cache rebuilds from history, rates can be re-sent),
	// so their failures are logged rather than surfaced.
	if s.balanceSvc != nil {
		if err := s.balanceSvc.ProcessTransaction(ctx, &transaction); err != nil {
			logger.Error("Failed to update balance cache after posting", slog.String("transaction_id", transaction.TransactionID), slog.String("error", err.Error()))
		}
	}
	if len(pendingRates) > 0 {
		s.applyRateUpdates(ctx, pendingRates, occurredAt, creator, logger)
	}

	logger.Info("Transaction posted", slog.String("transaction_id", transaction.TransactionID), slog.Int("lines", len(transaction.Lines)))
	return &transaction, nil
}

func (s *postingService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transaction id must not be empty", apperrors.ErrValidation)
	}
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

// buildLines validates each request line into a domain transaction line.
func (s *postingService) buildLines(reqLines []dto.PostingLineRequest) ([]domain.TransactionLine, error) {
	lines := make([]domain.TransactionLine, 0, len(reqLines))
	for i, rl := range reqLines {
		entry, err := domain.NewLedgerEntry(rl.Side, rl.Amount, rl.CurrencyCode)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		fullName, err := domain.NormalizeAccountFullName(rl.AccountFullName)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		line := domain.TransactionLine{
			AccountFullName: fullName,
			Side:            entry.Side,
			Amount:          entry.Amount,
			CurrencyCode:    entry.CurrencyCode,
			Notes:           rl.Notes,
		}
		if rl.Rate != nil {
			quantized := domain.QuantizeRate(*rl.Rate)
			if quantized.LessThanOrEqual(decimal.Zero) {
				return nil, fmt.Errorf("%w: line %d: rate must be positive, got %s", apperrors.ErrValidation, i, rl.Rate.String())
			}
			line.Rate = &quantized
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// resolveAccounts binds each line to a stored account by full name. Any
// missing account fails the whole posting with ErrNotFound.
func (s *postingService) resolveAccounts(ctx context.Context, lines []domain.TransactionLine) error {
	names := make([]string, 0, len(lines))
	seen := make(map[string]bool)
	for _, line := range lines {
		if !seen[line.AccountFullName] {
			seen[line.AccountFullName] = true
			names = append(names, line.AccountFullName)
		}
	}
	accounts, err := s.accountRepo.FindAccountsByFullNames(ctx, names)
	if err != nil {
		return fmt.Errorf("failed to resolve accounts: %w", err)
	}
	for i := range lines {
		account, ok := accounts[lines[i].AccountFullName]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, lines[i].AccountFullName)
		}
		lines[i].AccountID = account.AccountID
	}
	return nil
}

// resolveCurrencies binds each line's currency to the loaded catalog. An
// unknown currency is a missing resource, not malformed input, so it
// surfaces as ErrNotFound like an unknown account does.
func resolveCurrencies(lines []domain.TransactionLine, currencies []domain.Currency) error {
	for _, line := range lines {
		if domain.FindCurrency(currencies, line.CurrencyCode) == nil {
			return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, line.CurrencyCode)
		}
	}
	return nil
}

// pendingRate is one resolved catalog update extracted from posting lines.
type pendingRate struct {
	currencyCode string
	rate         decimal.Decimal
}

// resolveRateUpdates collapses explicit line rates into one rate per
// currency according to the configured conflict policy: last_write keeps
// the rate of the last line carrying one, weighted_average weights each
// rate by its line amount. Rates on the base currency are rejected.
func (s *postingService) resolveRateUpdates(lines []domain.TransactionLine, currencies []domain.Currency) ([]pendingRate, error) {
	base := domain.BaseCurrency(currencies)

	type rateAcc struct {
		last        decimal.Decimal
		weightedSum decimal.Decimal
		weight      decimal.Decimal
	}
	accs := make(map[string]*rateAcc)
	order := make([]string, 0)

	for _, line := range lines {
		if line.Rate == nil {
			continue
		}
		if base != nil && line.CurrencyCode == base.Code {
			return nil, fmt.Errorf("%w: base currency %s must not carry a rate", apperrors.ErrValidation, base.Code)
		}
		acc, ok := accs[line.CurrencyCode]
		if !ok {
			acc = &rateAcc{weightedSum: decimal.Zero, weight: decimal.Zero}
			accs[line.CurrencyCode] = acc
			order = append(order, line.CurrencyCode)
		}
		acc.last = *line.Rate
		acc.weightedSum = acc.weightedSum.Add(line.Rate.Mul(line.Amount))
		acc.weight = acc.weight.Add(line.Amount)
	}

	pending := make([]pendingRate, 0, len(order))
	for _, code := range order {
		acc := accs[code]
		rate := acc.last
		if s.ratePolicy == config.RatePolicyWeightedAverage {
			rate = domain.QuantizeRate(acc.weightedSum.Div(acc.weight))
		}
		pending = append(pending, pendingRate{currencyCode: code, rate: rate})
	}
	return pending, nil
}

// applyPendingRates overlays pending rates onto a copy of the catalog so
// validation sees the rates this posting is introducing.
func applyPendingRates(currencies []domain.Currency, pending []pendingRate) []domain.Currency {
	if len(pending) == 0 {
		return currencies
	}
	effective := make([]domain.Currency, len(currencies))
	copy(effective, currencies)
	for _, p := range pending {
		if c := domain.FindCurrency(effective, p.currencyCode); c != nil {
			rate := p.rate
			c.RateToBase = &rate
		}
	}
	return effective
}

// applyRateUpdates persists resolved rates and appends one audit event per
// currency. Runs after the transaction commit; failures are logged.
func (s *postingService) applyRateUpdates(ctx context.Context, pending []pendingRate, occurredAt time.Time, creator string, logger *slog.Logger) {
	rates := make(map[string]decimal.Decimal, len(pending))
	for _, p := range pending {
		rates[p.currencyCode] = p.rate
	}
	if err := s.currencyRepo.BulkUpsertRates(ctx, rates, creator); err != nil {
		logger.Error("Failed to upsert rates after posting", slog.String("error", err.Error()))
		return
	}
	for _, p := range pending {
		event := domain.RateEvent{
			CurrencyCode:  p.currencyCode,
			Rate:          p.rate,
			OccurredAt:    occurredAt,
			PolicyApplied: s.ratePolicy,
			Source:        RateSourcePosting,
		}
		if _, err := s.rateEventRepo.AddEvent(ctx, event); err != nil {
			logger.Error("Failed to record rate audit event", slog.String("code", p.currencyCode), slog.String("error", err.Error()))
		}
	}
}
