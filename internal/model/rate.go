package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one persisted rate row: units of Currency per 1 hub unit,
// scoped to a client. The full set for a client is always replaced as a unit;
// there is no partial rate update.
type ExchangeRate struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"clientId"`
	Currency  Currency        `json:"currency"`
	Rate      decimal.Decimal `json:"rate"`
	Source    string          `json:"source"`
	AsOf      time.Time       `json:"asOf"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
