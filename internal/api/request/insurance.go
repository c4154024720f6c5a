package request

// CreateCalculatorRequest represents the request body for creating a benefit
// projection calculator. Benefits holds per-policy-year amounts, index 0 =
// policy year 1; missing years default to zero.
type CreateCalculatorRequest struct {
	Company   string   `json:"company"`
	Product   string   `json:"product"`
	Currency  string   `json:"currency"`
	StartDate string   `json:"startDate"`
	Benefits  []string `json:"benefits"`
}

// UpdateCalculatorRequest represents the request body for updating a
// calculator. A null benefits field keeps the previously entered amounts;
// the row table is regenerated either way.
type UpdateCalculatorRequest struct {
	Company   string   `json:"company"`
	Product   string   `json:"product"`
	Currency  string   `json:"currency"`
	StartDate string   `json:"startDate"`
	Benefits  []string `json:"benefits,omitempty"`
}
