package models

// Account represents a ledger account row.
type Account struct {
	AccountID    string `json:"accountID"` // Primary Key (UUID)
	FullName     string `json:"fullName"`  // Unique colon-delimited path
	CurrencyCode string `json:"currencyCode"`
	AuditFields
}
