package model

import "github.com/shopspring/decimal"

// AssetClass identifies one of the valuation buckets a position belongs to.
type AssetClass string

const (
	AssetCash      AssetClass = "cash"
	AssetEquity    AssetClass = "equity"
	AssetBond      AssetClass = "bond"
	AssetNote      AssetClass = "note"
	AssetRecurring AssetClass = "recurring"
	AssetInsurance AssetClass = "insurance"
)

// AssetClasses lists every valuation bucket, in display order.
var AssetClasses = []AssetClass{AssetCash, AssetEquity, AssetBond, AssetNote, AssetRecurring, AssetInsurance}

// ValidAssetClass reports whether c names a known asset class.
func ValidAssetClass(c AssetClass) bool {
	for _, class := range AssetClasses {
		if class == c {
			return true
		}
	}
	return false
}

// CashBalance is one client's balance in a single currency.
// Amount is kept as the raw user-entered string; parsing is tolerant and
// falls back to zero, so a half-filled record never breaks a total.
type CashBalance struct {
	ID       string   `json:"id"`
	ClientID string   `json:"clientId"`
	Currency Currency `json:"currency"`
	Amount   string   `json:"amount"`
}

// EquityPosition is a share holding, domestic or foreign listed.
//
// Shares, CostPerShare and CurrentPrice are the raw inputs; everything below
// them is derived and overwritten on every revaluation. Derived fields are
// never an independent source of truth.
type EquityPosition struct {
	ID       string   `json:"id"`
	ClientID string   `json:"clientId"`
	Currency Currency `json:"currency"`
	Market   string   `json:"market"`
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`

	Shares       string `json:"shares"`
	CostPerShare string `json:"costPerShare"`
	CurrentPrice string `json:"currentPrice"`

	MarketValue decimal.Decimal `json:"marketValue"`
	Cost        decimal.Decimal `json:"cost"`
	ProfitLoss  decimal.Decimal `json:"profitLoss"`
	ReturnRate  decimal.Decimal `json:"returnRate"`
}

// BondPosition is a fixed-income holding. CurrentValue and ReceivedInterest
// are manual inputs, not derived; cost and P/L are recomputed from the raws.
type BondPosition struct {
	ID       string   `json:"id"`
	ClientID string   `json:"clientId"`
	Currency Currency `json:"currency"`
	Name     string   `json:"name"`

	FaceValue            string `json:"faceValue"`
	SubscriptionPricePct string `json:"subscriptionPricePct"`
	AccruedInterest      string `json:"accruedInterest"`
	CurrentValue         string `json:"currentValue"`
	ReceivedInterest     string `json:"receivedInterest"`

	Cost       decimal.Decimal `json:"cost"`
	ProfitLoss decimal.Decimal `json:"profitLoss"`
	ReturnRate decimal.Decimal `json:"returnRate"`
}

// NoteLeg is one underlying target of a structured note. A note carries up to
// four legs; legs are independent, a missing one never blocks the others.
type NoteLeg struct {
	Symbol       string `json:"symbol"`
	InitialPrice string `json:"initialPrice"`
	LivePrice    string `json:"livePrice"`

	StrikePrice     decimal.Decimal `json:"strikePrice"`
	ProtectionPrice decimal.Decimal `json:"protectionPrice"`
	DistancePct     decimal.Decimal `json:"distancePct"`
}

// MaxNoteLegs caps the number of underlying targets per structured note.
const MaxNoteLegs = 4

// StructuredNote is a structured-product holding. An exited note is retained
// for record keeping but contributes nothing to any total.
type StructuredNote struct {
	ID          string   `json:"id"`
	ClientID    string   `json:"clientId"`
	Currency    Currency `json:"currency"`
	ProductName string   `json:"productName"`

	TransactionAmount string `json:"transactionAmount"`
	InterestRatePct   string `json:"interestRatePct"`
	KOPct             string `json:"koPct"`
	KIPct             string `json:"kiPct"`
	PutPct            string `json:"putPct"`
	IsExited          bool   `json:"isExited"`

	Legs [MaxNoteLegs]NoteLeg `json:"legs"`
}

// RecurringPlan is a recurring-investment plan. Valuation is pass-through:
// the manually maintained market value is only currency-converted.
type RecurringPlan struct {
	ID       string   `json:"id"`
	ClientID string   `json:"clientId"`
	Currency Currency `json:"currency"`
	Name     string   `json:"name"`

	MonthlyAmount string `json:"monthlyAmount"`
	MarketValue   string `json:"marketValue"`
}

// InsurancePolicy is the cash-value side of an insurance holding, valued
// pass-through like a recurring plan. Benefit projection lives on the
// InsuranceCalculator, not here.
type InsurancePolicy struct {
	ID       string   `json:"id"`
	ClientID string   `json:"clientId"`
	Currency Currency `json:"currency"`
	Company  string   `json:"company"`
	Product  string   `json:"product"`

	CashValue string `json:"cashValue"`
}
