package testutil

import (
	"context"
	"time"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fx"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fxfeed"
)

// MockQuoteFeed is a mock implementation of service.QuoteFeed for testing.
// It serves predefined prices instead of calling the external feed.
type MockQuoteFeed struct {
	// MockPrices maps symbols to the decimal price strings to return.
	MockPrices map[string]string
	// MockError is the error to return from both query methods.
	MockError error
	// QueryCount tracks how many times a query method was called.
	QueryCount int
}

// NewMockQuoteFeed creates a mock quote feed serving the given prices.
func NewMockQuoteFeed(prices map[string]string) *MockQuoteFeed {
	return &MockQuoteFeed{MockPrices: prices}
}

// Price returns the configured price for one symbol. Symbols without a
// configured price are absent, matching the real feed's partial results.
func (m *MockQuoteFeed) Price(_ context.Context, symbol string) (string, error) {
	m.QueryCount++
	if m.MockError != nil {
		return "", m.MockError
	}
	return m.MockPrices[symbol], nil
}

// Prices returns the configured prices for the requested symbols.
func (m *MockQuoteFeed) Prices(_ context.Context, symbols []string) (map[string]string, error) {
	m.QueryCount++
	if m.MockError != nil {
		return nil, m.MockError
	}
	prices := make(map[string]string, len(symbols))
	for _, symbol := range symbols {
		if price, ok := m.MockPrices[symbol]; ok {
			prices[symbol] = price
		}
	}
	return prices, nil
}

// WithError configures the mock to return the specified error.
func (m *MockQuoteFeed) WithError(err error) *MockQuoteFeed {
	m.MockError = err
	return m
}

// MockRateFeed is a mock implementation of service.RateFeed for testing.
type MockRateFeed struct {
	// MockRates is the rate set to return from Fetch.
	MockRates fx.RateSet
	// MockError is the error to return from Fetch.
	MockError error
	// FetchCount tracks how many times Fetch was called.
	FetchCount int
}

// NewMockRateFeed creates a mock rate feed serving the given rate set.
func NewMockRateFeed(rates fx.RateSet) *MockRateFeed {
	return &MockRateFeed{MockRates: rates}
}

// Fetch returns the configured rate set, stamped as coming from "mock".
func (m *MockRateFeed) Fetch(_ context.Context) (fxfeed.Result, error) {
	m.FetchCount++
	if m.MockError != nil {
		return fxfeed.Result{}, m.MockError
	}
	return fxfeed.Result{
		Rates:  m.MockRates,
		Source: "mock",
		AsOf:   time.Now().UTC(),
	}, nil
}

// WithError configures the mock to return the specified error.
func (m *MockRateFeed) WithError(err error) *MockRateFeed {
	m.MockError = err
	return m
}
