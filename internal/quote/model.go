package quote

// Response represents the raw JSON response structure from the quote feed's
// chart endpoint. It maps the Yahoo-style chart format: one result object
// carrying symbol metadata, timestamps and close-price arrays, plus an
// optional feed-side error message.
type Response struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				ExchangeName       string  `json:"exchangeName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}
