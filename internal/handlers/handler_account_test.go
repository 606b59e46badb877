package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/avasiliev/fx_ledger_app/internal/core/ports/services"
	"github.com/avasiliev/fx_ledger_app/internal/dto"
	"github.com/avasiliev/fx_ledger_app/internal/handlers"
	"github.com/avasiliev/fx_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creator string) (*domain.Account, error) {
	args := m.Called(ctx, req, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByFullName(ctx context.Context, fullName string) (*domain.Account, error) {
	args := m.Called(ctx, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountLedger(ctx context.Context, fullName string, start, end time.Time, offset, limit int, order portsrepo.LedgerOrder) ([]domain.TransactionLine, error) {
	args := m.Called(ctx, fullName, start, end, offset, limit, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionLine), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) ProcessTransaction(ctx context.Context, transaction *domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}
func (m *MockBalanceService) GetBalance(ctx context.Context, account *domain.Account, asOf time.Time, recompute bool) (decimal.Decimal, error) {
	args := m.Called(ctx, account, asOf, recompute)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockBalanceService *MockBalanceService
	jwtSecret          string
}

func (suite *AccountHandlerTestSuite) generateTestToken(subject string) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockAccountService = new(MockAccountService)
	suite.mockBalanceService = new(MockBalanceService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // no swagger routes in tests
	}
	services := &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
		Balance: suite.mockBalanceService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AccountHandlerTestSuite) doRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	creator := "user-1"
	req := dto.CreateAccountRequest{FullName: "Assets:Cash", CurrencyCode: "USD"}
	created := &domain.Account{
		AccountID:    "acc-1",
		FullName:     "Assets:Cash",
		CurrencyCode: "USD",
		AuditFields:  domain.AuditFields{CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)},
	}
	suite.mockAccountService.On("CreateAccount", mock.Anything, req, creator).Return(created, nil)

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", req, suite.generateTestToken(creator))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal("Assets:Cash", resp.FullName)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_UnknownCurrency() {
	creator := "user-1"
	req := dto.CreateAccountRequest{FullName: "Assets:Cash", CurrencyCode: "XXX"}
	suite.mockAccountService.On("CreateAccount", mock.Anything, req, creator).Return(nil, apperrors.ErrNotFound)

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", req, suite.generateTestToken(creator))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_NoToken() {
	req := dto.CreateAccountRequest{FullName: "Assets:Cash", CurrencyCode: "USD"}

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", req, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_Success() {
	account := &domain.Account{AccountID: "acc-1", FullName: "Assets:Cash", CurrencyCode: "USD"}
	suite.mockAccountService.On("GetAccountByFullName", mock.Anything, "Assets:Cash").Return(account, nil)
	suite.mockBalanceService.On("GetBalance", mock.Anything, account, mock.Anything, false).
		Return(decimal.RequireFromString("74.50"), nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/Assets:Cash/balance", nil, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Assets:Cash", resp.AccountFullName)
	suite.True(resp.Amount.Equal(decimal.RequireFromString("74.50")))
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_Recompute() {
	account := &domain.Account{AccountID: "acc-1", FullName: "Assets:Cash", CurrencyCode: "USD"}
	suite.mockAccountService.On("GetAccountByFullName", mock.Anything, "Assets:Cash").Return(account, nil)
	suite.mockBalanceService.On("GetBalance", mock.Anything, account, mock.Anything, true).
		Return(decimal.NewFromInt(10), nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/Assets:Cash/balance?recompute=true", nil, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByFullName", mock.Anything, "Assets:Nope").Return(nil, apperrors.ErrNotFound)

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/Assets:Nope", nil, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
