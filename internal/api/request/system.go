package request

// SetQuoteAPIKeyRequest represents the request body for storing the quote
// feed API key.
type SetQuoteAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}
