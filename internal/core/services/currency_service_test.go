package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portssvc "github.com/avasiliev/fx_ledger_app/internal/core/ports/services"
	"github.com/avasiliev/fx_ledger_app/internal/core/services"
	"github.com/avasiliev/fx_ledger_app/internal/dto"
	"github.com/avasiliev/fx_ledger_app/internal/platform/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo  *MockCurrencyRepository
	mockRateEventRepo *MockRateEventRepository
	service           portssvc.CurrencySvcFacade
	now               time.Time
}

func (s *CurrencyServiceTestSuite) SetupTest() {
	s.mockCurrencyRepo = new(MockCurrencyRepository)
	s.mockRateEventRepo = new(MockRateEventRepository)
	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.service = services.NewCurrencyService(s.mockCurrencyRepo, s.mockRateEventRepo, clock.Fixed{T: s.now})
}

func (s *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	rate := decimal.RequireFromString("1.25")
	req := dto.CreateCurrencyRequest{Code: "eur", RateToBase: &rate}

	s.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(nil, apperrors.ErrNotFound).Once()
	s.mockCurrencyRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "EUR" && !c.IsBase && c.RateToBase.Equal(rate) && c.CreatedBy == "tester" && c.CreatedAt.Equal(s.now)
	})).Return(nil).Once()

	currency, err := s.service.CreateCurrency(ctx, req, "tester")

	s.Require().NoError(err)
	s.Equal("EUR", currency.Code)
	s.mockCurrencyRepo.AssertExpectations(s.T())
}

func (s *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	existing := &domain.Currency{Code: "EUR"}
	s.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()

	currency, err := s.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{Code: "EUR"}, "tester")

	s.Require().Error(err)
	s.Nil(currency)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockCurrencyRepo.AssertExpectations(s.T())
}

func (s *CurrencyServiceTestSuite) TestCreateCurrency_AsBaseDemotesOthers() {
	ctx := context.Background()
	s.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()
	s.mockCurrencyRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()
	s.mockCurrencyRepo.On("SetBaseCurrency", ctx, "USD", "tester").Return(nil).Once()

	currency, err := s.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{Code: "USD", IsBase: true}, "tester")

	s.Require().NoError(err)
	s.True(currency.IsBase)
	s.Nil(currency.RateToBase)
	s.mockCurrencyRepo.AssertExpectations(s.T())
}

func (s *CurrencyServiceTestSuite) TestSetBaseCurrency_UnknownCode() {
	ctx := context.Background()
	catalog := []domain.Currency{{Code: "USD", IsBase: true}}
	s.mockCurrencyRepo.On("ListCurrencies", ctx).Return(catalog, nil).Once()

	base, err := s.service.SetBaseCurrency(ctx, "GBP", "tester")

	s.Require().Error(err)
	s.Nil(base)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCurrencyRepo.AssertExpectations(s.T())
}

func (s *CurrencyServiceTestSuite) TestUpdateRate_AppendsAuditEvent() {
	ctx := context.Background()
	oldRate := decimal.RequireFromString("1.20")
	existing := &domain.Currency{Code: "EUR", RateToBase: &oldRate}
	newRate := decimal.RequireFromString("1.256789")

	s.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()
	s.mockCurrencyRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "EUR" && c.RateToBase.Equal(newRate) && c.LastUpdatedBy == "tester"
	})).Return(nil).Once()
	s.mockRateEventRepo.On("AddEvent", ctx, mock.MatchedBy(func(e domain.RateEvent) bool {
		return e.CurrencyCode == "EUR" && e.Rate.Equal(newRate) && e.OccurredAt.Equal(s.now) && e.PolicyApplied == services.RateSourceManual
	})).Return(int64(1), nil).Once()

	currency, err := s.service.UpdateRate(ctx, "EUR", newRate, "tester")

	s.Require().NoError(err)
	s.True(currency.RateToBase.Equal(newRate))
	s.mockCurrencyRepo.AssertExpectations(s.T())
	s.mockRateEventRepo.AssertExpectations(s.T())
}

func (s *CurrencyServiceTestSuite) TestUpdateRate_BaseCurrencyRejected() {
	ctx := context.Background()
	existing := &domain.Currency{Code: "USD", IsBase: true}
	s.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(existing, nil).Once()

	currency, err := s.service.UpdateRate(ctx, "USD", decimal.NewFromInt(2), "tester")

	s.Require().Error(err)
	s.Nil(currency)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCurrencyRepo.AssertExpectations(s.T())
}

func (s *CurrencyServiceTestSuite) TestUpdateRate_NonPositiveRejected() {
	ctx := context.Background()
	existing := &domain.Currency{Code: "EUR"}
	s.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()

	_, err := s.service.UpdateRate(ctx, "EUR", decimal.Zero, "tester")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
