package services_test

import (
	"context"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SetBaseCurrency(ctx context.Context, currencyCode string, updatedBy string) error {
	args := m.Called(ctx, currencyCode, updatedBy)
	return args.Error(0)
}

func (m *MockCurrencyRepository) ClearBaseCurrency(ctx context.Context, updatedBy string) error {
	args := m.Called(ctx, updatedBy)
	return args.Error(0)
}

func (m *MockCurrencyRepository) BulkUpsertRates(ctx context.Context, rates map[string]decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, rates, updatedBy)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByFullName(ctx context.Context, fullName string) (*domain.Account, error) {
	args := m.Called(ctx, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByFullNames(ctx context.Context, fullNames []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, fullNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsBetween(ctx context.Context, start, end time.Time, meta map[string]string) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListAccountLines(ctx context.Context, accountID string, start, end time.Time, offset, limit int, order portsrepo.LedgerOrder) ([]domain.TransactionLine, error) {
	args := m.Called(ctx, accountID, start, end, offset, limit, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionLine), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// --- Mock BalanceRepository ---

type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) GetCache(ctx context.Context, accountID string) (*domain.BalanceCacheEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceCacheEntry), args.Error(1)
}

func (m *MockBalanceRepository) UpsertCache(ctx context.Context, accountID string, amount decimal.Decimal, ts time.Time) error {
	args := m.Called(ctx, accountID, amount, ts)
	return args.Error(0)
}

func (m *MockBalanceRepository) ApplyDelta(ctx context.Context, accountID string, delta decimal.Decimal, ts time.Time) error {
	args := m.Called(ctx, accountID, delta, ts)
	return args.Error(0)
}

func (m *MockBalanceRepository) ClearCache(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock RateEventRepository ---

type MockRateEventRepository struct {
	mock.Mock
}

func (m *MockRateEventRepository) ListEvents(ctx context.Context, currencyCode string, limit int) ([]domain.RateEvent, error) {
	args := m.Called(ctx, currencyCode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateEvent), args.Error(1)
}

func (m *MockRateEventRepository) ListOldEvents(ctx context.Context, cutoff time.Time, limit int) ([]domain.RateEvent, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateEvent), args.Error(1)
}

func (m *MockRateEventRepository) AddEvent(ctx context.Context, event domain.RateEvent) (int64, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRateEventRepository) DeleteEventsByIDs(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRateEventRepository) ArchiveEvents(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRateEventRepository) MoveEventsToArchive(ctx context.Context, ids []int64) (int64, int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}
