package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/valuation"
)

// QuoteFeed is the external price feed consumed by the batch refresh.
type QuoteFeed interface {
	Price(ctx context.Context, symbol string) (string, error)
	Prices(ctx context.Context, symbols []string) (map[string]string, error)
}

// EquityService handles equity position business logic. Every write path
// revalues the position before persisting, so stored derived fields are never
// stale relative to the raws.
type EquityService struct {
	db         *sql.DB
	equityRepo *repository.EquityRepository
	feed       QuoteFeed
}

// NewEquityService creates a new EquityService with the provided dependencies.
// The db handle is used to commit a batch price refresh atomically.
func NewEquityService(db *sql.DB, equityRepo *repository.EquityRepository, feed QuoteFeed) *EquityService {
	return &EquityService{db: db, equityRepo: equityRepo, feed: feed}
}

// CreatePosition revalues and inserts a new equity position.
func (s *EquityService) CreatePosition(p model.EquityPosition) (model.EquityPosition, error) {
	p.ID = uuid.New().String()
	valuation.RevalueEquity(&p)
	if err := s.equityRepo.CreatePosition(p); err != nil {
		return model.EquityPosition{}, err
	}
	return p, nil
}

// UpdatePosition revalues and overwrites an existing equity position.
func (s *EquityService) UpdatePosition(p model.EquityPosition) (model.EquityPosition, error) {
	valuation.RevalueEquity(&p)
	if err := s.equityRepo.UpdatePosition(p); err != nil {
		return model.EquityPosition{}, err
	}
	return p, nil
}

// GetPosition retrieves one equity position.
func (s *EquityService) GetPosition(positionID string) (model.EquityPosition, error) {
	return s.equityRepo.GetPosition(positionID)
}

// GetPositions retrieves all equity positions for a client.
func (s *EquityService) GetPositions(clientID string) ([]model.EquityPosition, error) {
	return s.equityRepo.GetPositions(clientID)
}

// DeletePosition removes one equity position.
func (s *EquityService) DeletePosition(positionID string) error {
	return s.equityRepo.DeletePosition(positionID)
}

// RefreshPrices pulls live prices for every symbol a client holds and applies
// them. Fetches run concurrently and may complete in any order; results are
// applied per position and all updated positions are committed together in
// one transaction. A symbol with no feed result keeps its current price.
func (s *EquityService) RefreshPrices(ctx context.Context, clientID string) ([]model.EquityPosition, error) {
	positions, err := s.equityRepo.GetPositions(clientID)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	symbols := []string{}
	for _, p := range positions {
		if p.Symbol != "" && !seen[p.Symbol] {
			seen[p.Symbol] = true
			symbols = append(symbols, p.Symbol)
		}
	}
	if len(symbols) == 0 {
		return []model.EquityPosition{}, nil
	}

	prices, err := s.feed.Prices(ctx, symbols)
	if err != nil {
		return nil, err
	}
	if len(prices) < len(symbols) {
		log.Printf("price refresh: %d of %d symbols returned no result", len(symbols)-len(prices), len(symbols))
	}

	updated := []model.EquityPosition{}
	for _, p := range positions {
		price, ok := prices[p.Symbol]
		if !ok {
			continue
		}
		p.CurrentPrice = price
		valuation.RevalueEquity(&p)
		updated = append(updated, p)
	}
	if len(updated) == 0 {
		return []model.EquityPosition{}, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin price refresh transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	txRepo := s.equityRepo.WithTx(tx)
	for _, p := range updated {
		if err := txRepo.UpdatePosition(p); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit price refresh: %w", err)
	}

	return updated, nil
}
