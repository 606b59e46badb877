package services

import (
	portsrepo "github.com/avasiliev/fx_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/avasiliev/fx_ledger_app/internal/core/ports/services"
	"github.com/avasiliev/fx_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The balance cache store behind repos.BalanceRepo
// is chosen by the caller according to cfg.BalanceBackend.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, clock portssvc.Clock) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo, repos.RateEventRepo, clock)
	container.Account = NewAccountService(repos.AccountRepo, repos.CurrencyRepo, repos.TransactionRepo, clock)
	container.Balance = NewBalanceService(repos.BalanceRepo, repos.TransactionRepo, clock)
	container.Posting = NewPostingService(
		repos.AccountRepo,
		repos.CurrencyRepo,
		repos.TransactionRepo,
		repos.RateEventRepo,
		container.Balance,
		clock,
		cfg.RateConflictPolicy,
	)
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.CurrencyRepo, clock)
	container.FxTTL = NewFxTTLService(repos.RateEventRepo, clock, cfg.FxTTLMaxScan)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade  = (*currencyService)(nil)
	_ portssvc.AccountSvcFacade   = (*accountService)(nil)
	_ portssvc.PostingSvcFacade   = (*postingService)(nil)
	_ portssvc.BalanceSvcFacade   = (*balanceService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
	_ portssvc.FxTTLSvcFacade     = (*fxTTLService)(nil)
)
