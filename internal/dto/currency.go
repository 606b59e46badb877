package dto

import (
	"time"

	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the payload for adding a currency to the catalog.
type CreateCurrencyRequest struct {
	Code       string           `json:"code" binding:"required,min=3,max=10"`
	IsBase     bool             `json:"isBase"`
	RateToBase *decimal.Decimal `json:"rateToBase,omitempty"`
}

// UpdateRateRequest defines the payload for updating a currency's rate to base.
type UpdateRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code          string           `json:"code"`
	IsBase        bool             `json:"isBase"`
	RateToBase    *decimal.Decimal `json:"rateToBase,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:          c.Code,
		IsBase:        c.IsBase,
		RateToBase:    c.RateToBase,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// RateEventResponse defines the data returned for one audit event.
type RateEventResponse struct {
	ID            int64           `json:"id"`
	CurrencyCode  string          `json:"currencyCode"`
	Rate          decimal.Decimal `json:"rate"`
	OccurredAt    time.Time       `json:"occurredAt"`
	PolicyApplied string          `json:"policyApplied"`
	Source        string          `json:"source"`
}

// ToRateEventResponses converts domain rate events to DTOs.
func ToRateEventResponses(events []domain.RateEvent) []RateEventResponse {
	responses := make([]RateEventResponse, len(events))
	for i, e := range events {
		responses[i] = RateEventResponse{
			ID:            e.ID,
			CurrencyCode:  e.CurrencyCode,
			Rate:          e.Rate,
			OccurredAt:    e.OccurredAt,
			PolicyApplied: e.PolicyApplied,
			Source:        e.Source,
		}
	}
	return responses
}
