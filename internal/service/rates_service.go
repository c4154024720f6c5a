package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fx"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fxfeed"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/numfmt"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
)

// RateFeed abstracts the external exchange-rate feed.
type RateFeed interface {
	Fetch(ctx context.Context) (fxfeed.Result, error)
}

// RatesService manages each client's exchange-rate set. Rates are replaced as
// whole sets, never patched rate-by-rate, so concurrent valuations always see
// one coherent set. Every replacement invalidates the client's benefit
// projection cache.
type RatesService struct {
	rateRepo   *repository.RateRepository
	clientRepo *repository.ClientRepository
	feed       RateFeed
	benefits   *BenefitService
}

// NewRatesService creates a new RatesService with the provided dependencies.
func NewRatesService(rateRepo *repository.RateRepository, clientRepo *repository.ClientRepository, feed RateFeed, benefits *BenefitService) *RatesService {
	return &RatesService{rateRepo: rateRepo, clientRepo: clientRepo, feed: feed, benefits: benefits}
}

// GetSet returns a client's current rate set keyed by currency.
func (s *RatesService) GetSet(clientID string) (fx.RateSet, error) {
	return s.rateRepo.GetSet(clientID)
}

// GetRates returns a client's stored rate rows with source and timestamp.
func (s *RatesService) GetRates(clientID string) ([]model.ExchangeRate, error) {
	return s.rateRepo.GetRates(clientID)
}

// Refresh fetches the current rate set from the feed and replaces the
// client's stored set. On feed failure the stored set is left untouched and
// ErrFeedUnavailable is returned.
func (s *RatesService) Refresh(ctx context.Context, clientID string) (fx.RateSet, error) {
	if _, err := s.clientRepo.GetClient(clientID); err != nil {
		return nil, err
	}

	result, err := s.feed.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.rateRepo.ReplaceSet(clientID, result.Rates, result.Source, result.AsOf); err != nil {
		return nil, err
	}
	s.benefits.Invalidate(clientID)
	return result.Rates, nil
}

// RefreshAll refreshes rates for every client. Intended for the scheduled
// refresh; per-client failures are logged and do not stop the sweep.
func (s *RatesService) RefreshAll(ctx context.Context) {
	clients, err := s.clientRepo.GetClients()
	if err != nil {
		log.Printf("Scheduled rate refresh: failed to list clients: %v", err)
		return
	}
	for _, c := range clients {
		if _, err := s.Refresh(ctx, c.ID); err != nil {
			log.Printf("Scheduled rate refresh failed for client %s: %v", c.ID, err)
		}
	}
}

// SetManual replaces a client's rate set from manually entered values. Rates
// parse tolerantly the same way position inputs do; non-positive results are
// rejected rather than stored, since a zero rate would silently zero every
// conversion using it.
func (s *RatesService) SetManual(clientID string, raw map[model.Currency]string) (fx.RateSet, error) {
	if _, err := s.clientRepo.GetClient(clientID); err != nil {
		return nil, err
	}

	rates := make(fx.RateSet, len(raw))
	for cur, value := range raw {
		if !model.ValidCurrency(cur) || cur == model.Hub {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidCurrency, cur)
		}
		rate := numfmt.Parse(value)
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate for %s must be positive", apperrors.ErrInvalidCurrency, cur)
		}
		rates[cur] = rate
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: empty rate set", apperrors.ErrInvalidCurrency)
	}

	if err := s.rateRepo.ReplaceSet(clientID, rates, "manual", time.Now().UTC()); err != nil {
		return nil, err
	}
	s.benefits.Invalidate(clientID)
	return rates, nil
}
