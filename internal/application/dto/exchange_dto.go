package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateResponse the USD->INR rate served to the dashboard. Source is
// "live", "cache" or "fallback".
type ExchangeRateResponse struct {
	INRPerUSD decimal.Decimal `json:"inr_per_usd"`
	Source    string          `json:"source"`
	FetchedAt time.Time       `json:"fetched_at"`
}
