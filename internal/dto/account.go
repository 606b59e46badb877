package dto

import (
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating a ledger account.
type CreateAccountRequest struct {
	FullName     string `json:"fullName" binding:"required,max=255"`
	CurrencyCode string `json:"currencyCode" binding:"required,min=3,max=10"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID    string    `json:"accountID"`
	FullName     string    `json:"fullName"`
	CurrencyCode string    `json:"currencyCode"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    a.AccountID,
		FullName:     a.FullName,
		CurrencyCode: a.CurrencyCode,
		CreatedAt:    a.CreatedAt,
	}
}

// ListAccountsParams holds pagination parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
