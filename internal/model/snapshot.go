package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is one appended record of total portfolio value. Once written a
// snapshot is never mutated; corrections append a new record. A live snapshot
// is an ephemeral preview of the current total and is excluded from history
// and latest queries.
type Snapshot struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	CreatedAt time.Time `json:"createdAt"`
	IsLive    bool      `json:"isLive"`

	// Per-class subtotals, already converted to the hub currency.
	CashTotal      decimal.Decimal `json:"cashTotal"`
	EquityTotal    decimal.Decimal `json:"equityTotal"`
	BondTotal      decimal.Decimal `json:"bondTotal"`
	NoteTotal      decimal.Decimal `json:"noteTotal"`
	RecurringTotal decimal.Decimal `json:"recurringTotal"`
	InsuranceTotal decimal.Decimal `json:"insuranceTotal"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`

	Currencies []SnapshotCurrency `json:"currencies"`
}

// SnapshotCurrency captures one currency's cash amount and the exchange rate
// in force at the moment the snapshot was taken.
type SnapshotCurrency struct {
	SnapshotID string          `json:"-"`
	Currency   Currency        `json:"currency"`
	CashAmount decimal.Decimal `json:"cashAmount"`
	Rate       decimal.Decimal `json:"rate"`
}

// BondUpdate is one manually entered aggregate bond total/interest pair.
// Records are append-only; each save creates a new row so the history of
// manual overrides is preserved.
type BondUpdate struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"clientId"`
	Total     decimal.Decimal `json:"total"`
	Interest  decimal.Decimal `json:"interest"`
	CreatedAt time.Time       `json:"createdAt"`
}
