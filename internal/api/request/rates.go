package request

// SetRatesRequest represents the request body for manually replacing a
// client's exchange-rate set, keyed by currency code with rates quoted as
// foreign units per hub unit.
type SetRatesRequest struct {
	Rates map[string]string `json:"rates"`
}
