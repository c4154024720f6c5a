// Package fxfeed fetches exchange rates from the external rate feed.
package fxfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fx"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// Response maps the rate feed's JSON payload: rates quoted against the base
// currency, which must be the hub.
type Response struct {
	Result      string             `json:"result"`
	Provider    string             `json:"provider"`
	BaseCode    string             `json:"base_code"`
	TimeLastUTC string             `json:"time_last_update_utc"`
	Rates       map[string]float64 `json:"rates"`
}

// Result is one successful rate fetch: the full set of supported non-hub
// rates, the feed that produced them and their effective time.
type Result struct {
	Rates  fx.RateSet
	Source string
	AsOf   time.Time
}

// Client queries the external exchange-rate feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rate feed client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch retrieves the current rate set against the hub currency. Only
// supported currencies are kept; currencies missing from the payload are
// simply absent from the result. Any failure returns ErrFeedUnavailable and
// the caller retains its previous rate set.
func (c *Client) Fetch(ctx context.Context) (Result, error) {
	url := fmt.Sprintf("%s/latest/%s", c.baseURL, model.Hub)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: status %d", apperrors.ErrFeedUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Result{}, fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}
	if response.BaseCode != string(model.Hub) {
		return Result{}, fmt.Errorf("%w: unexpected base currency %s", apperrors.ErrFeedUnavailable, response.BaseCode)
	}

	rates := make(fx.RateSet)
	for _, cur := range model.Currencies {
		if cur == model.Hub {
			continue
		}
		if v, ok := response.Rates[string(cur)]; ok && v > 0 {
			rates[cur] = decimal.NewFromFloat(v)
		}
	}
	if len(rates) == 0 {
		return Result{}, fmt.Errorf("%w: no usable rates in payload", apperrors.ErrFeedUnavailable)
	}

	asOf, err := time.Parse(time.RFC1123, response.TimeLastUTC)
	if err != nil {
		asOf = time.Now().UTC()
	}

	return Result{Rates: rates, Source: response.Provider, AsOf: asOf}, nil
}
