package models

import "github.com/shopspring/decimal"

// Currency represents a catalog currency row.
type Currency struct {
	Code       string           `json:"code"` // Primary Key (e.g., "USD")
	IsBase     bool             `json:"isBase"`
	RateToBase *decimal.Decimal `json:"rateToBase,omitempty"` // NULL for the base currency
	AuditFields
}
