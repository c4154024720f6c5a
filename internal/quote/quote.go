// Package quote fetches live prices for equity symbols from the external
// market-data feed.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches caps the parallel requests of a batch price refresh.
const maxConcurrentFetches = 4

// Client queries the external price feed. The base URL is configurable so
// tests can point it at a local server.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a feed client for the given base URL. An empty apiKey is
// allowed; the feed is then queried anonymously.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Price fetches the latest price for one symbol and returns it as a decimal
// string. Returns apperrors.ErrSymbolNotFound when the feed has no data for
// the symbol.
func (c *Client) Price(ctx context.Context, symbol string) (string, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", c.baseURL, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}
	if response.Chart.Error != nil {
		return "", fmt.Errorf("%w: feed error: %s", apperrors.ErrSymbolNotFound, *response.Chart.Error)
	}
	if len(response.Chart.Result) == 0 {
		return "", fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, symbol)
	}

	result := response.Chart.Result[0]
	if result.Meta.RegularMarketPrice > 0 {
		return strconv.FormatFloat(result.Meta.RegularMarketPrice, 'f', -1, 64), nil
	}

	// Fall back to the most recent close when the meta price is absent.
	if len(result.Indicators.Quote) > 0 {
		closes := result.Indicators.Quote[0].Close
		for i := len(closes) - 1; i >= 0; i-- {
			if closes[i] > 0 {
				return strconv.FormatFloat(closes[i], 'f', -1, 64), nil
			}
		}
	}

	return "", fmt.Errorf("%w: no price data for %s", apperrors.ErrSymbolNotFound, symbol)
}

// Prices fetches prices for a batch of symbols concurrently. The result map
// contains an entry per symbol that succeeded; failed symbols are simply
// absent so the caller can leave their positions untouched. The batch as a
// whole only fails when the context is cancelled.
func (c *Client) Prices(ctx context.Context, symbols []string) (map[string]string, error) {
	prices := make(map[string]string, len(symbols))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			price, err := c.Price(ctx, symbol)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return nil
			}
			mu.Lock()
			prices[symbol] = price
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prices, nil
}
