package services

import "time"

// Clock abstracts time for orchestration code so tests can pin timestamps.
type Clock interface {
	Now() time.Time
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency  CurrencySvcFacade
	Account   AccountSvcFacade
	Posting   PostingSvcFacade
	Balance   BalanceSvcFacade
	Reporting ReportingSvcFacade
	FxTTL     FxTTLSvcFacade
}
