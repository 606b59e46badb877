package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portssvc "github.com/avasiliev/fx_ledger_app/internal/core/ports/services"
	"github.com/avasiliev/fx_ledger_app/internal/core/services"
	"github.com/avasiliev/fx_ledger_app/internal/platform/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockCurrencyRepo    *MockCurrencyRepository
	service             portssvc.ReportingSvcFacade
	now                 time.Time
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockTransactionRepo = new(MockTransactionRepository)
	s.mockCurrencyRepo = new(MockCurrencyRepository)
	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.service = services.NewReportingService(s.mockTransactionRepo, s.mockCurrencyRepo, clock.Fixed{T: s.now})
}

func (s *ReportingServiceTestSuite) transactions() []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID: "txn-1",
			Lines: []domain.TransactionLine{
				{Side: domain.Debit, Amount: decimal.NewFromInt(100), CurrencyCode: "USD"},
				{Side: domain.Credit, Amount: decimal.NewFromInt(80), CurrencyCode: "EUR"},
			},
		},
		{
			TransactionID: "txn-2",
			Lines: []domain.TransactionLine{
				{Side: domain.Debit, Amount: decimal.NewFromInt(20), CurrencyCode: "EUR"},
				{Side: domain.Credit, Amount: decimal.NewFromInt(25), CurrencyCode: "USD"},
			},
		},
	}
}

func (s *ReportingServiceTestSuite) TestTradingBalance_AggregatesByCurrency() {
	ctx := context.Background()
	s.mockTransactionRepo.On("ListTransactionsBetween", ctx, time.Time{}, s.now, map[string]string(nil)).Return(s.transactions(), nil).Once()

	rows, err := s.service.TradingBalance(ctx, time.Time{})

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("EUR", rows[0].CurrencyCode)
	s.True(rows[0].Debit.Equal(decimal.NewFromInt(20)))
	s.True(rows[0].Credit.Equal(decimal.NewFromInt(80)))
	s.True(rows[0].Net.Equal(decimal.NewFromInt(-60)))
	s.Equal("USD", rows[1].CurrencyCode)
	s.True(rows[1].Net.Equal(decimal.NewFromInt(75)))
	s.mockTransactionRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestTradingBalanceDetailed_ConvertsToBase() {
	ctx := context.Background()
	eurRate := decimal.RequireFromString("1.25")
	catalog := []domain.Currency{
		{Code: "USD", IsBase: true},
		{Code: "EUR", RateToBase: &eurRate},
	}

	s.mockTransactionRepo.On("ListTransactionsBetween", ctx, time.Time{}, s.now, map[string]string(nil)).Return(s.transactions(), nil).Once()
	s.mockCurrencyRepo.On("ListCurrencies", ctx).Return(catalog, nil).Once()

	rows, err := s.service.TradingBalanceDetailed(ctx, "", time.Time{})

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.True(rows[0].UsedRate.Equal(eurRate))
	s.True(rows[0].NetBase.Equal(decimal.NewFromInt(-75)), "got %s", rows[0].NetBase)
	s.True(rows[1].UsedRate.Equal(decimal.NewFromInt(1)))
	s.True(rows[1].NetBase.Equal(decimal.NewFromInt(75)))
}

func (s *ReportingServiceTestSuite) TestTradingBalanceDetailed_NoBaseDefined() {
	ctx := context.Background()
	catalog := []domain.Currency{{Code: "EUR"}}

	s.mockTransactionRepo.On("ListTransactionsBetween", ctx, time.Time{}, s.now, map[string]string(nil)).Return(s.transactions(), nil).Once()
	s.mockCurrencyRepo.On("ListCurrencies", ctx).Return(catalog, nil).Once()

	rows, err := s.service.TradingBalanceDetailed(ctx, "", time.Time{})

	s.Require().Error(err)
	s.Nil(rows)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
