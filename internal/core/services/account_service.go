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
	"github.com/google/uuid"
)

const (
	defaultAccountListLimit = 100
	maxAccountListLimit     = 1000
)

// accountService manages ledger accounts addressed by hierarchical path.
type accountService struct {
	accountRepo     portsrepo.AccountRepositoryFacade
	currencyRepo    portsrepo.CurrencyRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	clock           portssvc.Clock
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade, clock portssvc.Clock) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:     accountRepo,
		currencyRepo:    currencyRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creator string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := domain.NewAccount(uuid.NewString(), req.FullName, req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	// The account currency must already be in the catalog.
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, account.CurrencyCode); err != nil {
		return nil, fmt.Errorf("failed to resolve account currency %s: %w", account.CurrencyCode, err)
	}

	existing, err := s.accountRepo.FindAccountByFullName(ctx, account.FullName)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check account %s: %w", account.FullName, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, account.FullName)
	}

	now := s.clock.Now()
	account.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creator,
		LastUpdatedAt: now,
		LastUpdatedBy: creator,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("full_name", account.FullName), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create account %s: %w", account.FullName, err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("full_name", account.FullName))
	return &account, nil
}

func (s *accountService) GetAccountByFullName(ctx context.Context, fullName string) (*domain.Account, error) {
	normalized, err := domain.NormalizeAccountFullName(fullName)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByFullName(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", normalized, err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = defaultAccountListLimit
	}
	if limit > maxAccountListLimit {
		limit = maxAccountListLimit
	}
	if offset < 0 {
		offset = 0
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) GetAccountLedger(ctx context.Context, fullName string, start, end time.Time, offset, limit int, order portsrepo.LedgerOrder) ([]domain.TransactionLine, error) {
	account, err := s.GetAccountByFullName(ctx, fullName)
	if err != nil {
		return nil, err
	}
	if end.IsZero() {
		end = s.clock.Now()
	}
	if limit <= 0 {
		limit = defaultAccountListLimit
	}
	if offset < 0 {
		offset = 0
	}
	if order != portsrepo.LedgerOrderDesc {
		order = portsrepo.LedgerOrderAsc
	}
	lines, err := s.transactionRepo.ListAccountLines(ctx, account.AccountID, start, end, offset, limit, order)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger for %s: %w", account.FullName, err)
	}
	if lines == nil {
		return []domain.TransactionLine{}, nil
	}
	return lines, nil
}
