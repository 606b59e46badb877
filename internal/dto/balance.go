package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GetBalanceParams holds query parameters for a balance lookup.
type GetBalanceParams struct {
	AsOf      *time.Time `form:"asOf" time_format:"2006-01-02T15:04:05Z07:00"`
	Recompute bool       `form:"recompute"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	AccountFullName string          `json:"accountFullName"`
	Amount          decimal.Decimal `json:"amount"`
	AsOf            time.Time       `json:"asOf"`
}
