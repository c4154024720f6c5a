package request

// SetCashBalanceRequest represents the request body for writing one
// currency's cash balance. Amount is kept as the raw entered string.
type SetCashBalanceRequest struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// EquityPositionRequest represents the request body for creating or updating
// an equity position. All numeric fields are raw strings; parsing is tolerant
// and falls back to zero.
type EquityPositionRequest struct {
	Currency     string `json:"currency"`
	Market       string `json:"market"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Shares       string `json:"shares"`
	CostPerShare string `json:"costPerShare"`
	CurrentPrice string `json:"currentPrice"`
}

// BondPositionRequest represents the request body for creating or updating a
// bond position.
type BondPositionRequest struct {
	Currency             string `json:"currency"`
	Name                 string `json:"name"`
	FaceValue            string `json:"faceValue"`
	SubscriptionPricePct string `json:"subscriptionPricePct"`
	AccruedInterest      string `json:"accruedInterest"`
	CurrentValue         string `json:"currentValue"`
	ReceivedInterest     string `json:"receivedInterest"`
}

// BondUpdateRequest represents the request body for appending a manually
// entered aggregate bond total/interest record.
type BondUpdateRequest struct {
	Total    string `json:"total"`
	Interest string `json:"interest"`
}

// NoteLegRequest is one underlying target of a structured note.
type NoteLegRequest struct {
	Symbol       string `json:"symbol"`
	InitialPrice string `json:"initialPrice"`
	LivePrice    string `json:"livePrice"`
}

// StructuredNoteRequest represents the request body for creating or updating
// a structured note with up to four legs.
type StructuredNoteRequest struct {
	Currency          string           `json:"currency"`
	ProductName       string           `json:"productName"`
	TransactionAmount string           `json:"transactionAmount"`
	InterestRatePct   string           `json:"interestRatePct"`
	KOPct             string           `json:"koPct"`
	KIPct             string           `json:"kiPct"`
	PutPct            string           `json:"putPct"`
	IsExited          bool             `json:"isExited"`
	Legs              []NoteLegRequest `json:"legs"`
}

// RecurringPlanRequest represents the request body for creating or updating a
// recurring-investment plan.
type RecurringPlanRequest struct {
	Currency      string `json:"currency"`
	Name          string `json:"name"`
	MonthlyAmount string `json:"monthlyAmount"`
	MarketValue   string `json:"marketValue"`
}

// InsurancePolicyRequest represents the request body for creating or updating
// the cash-value side of an insurance holding.
type InsurancePolicyRequest struct {
	Currency  string `json:"currency"`
	Company   string `json:"company"`
	Product   string `json:"product"`
	CashValue string `json:"cashValue"`
}
