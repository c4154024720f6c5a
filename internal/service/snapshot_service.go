package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
)

// SnapshotService records consolidated portfolio values into the append-only
// snapshot ledger. Written records are never edited; a correction is a new
// record, and the live preview row is the single exception that gets replaced
// in place.
type SnapshotService struct {
	snapshotRepo *repository.SnapshotRepository
	aggregation  *AggregationService
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(snapshotRepo *repository.SnapshotRepository, aggregation *AggregationService) *SnapshotService {
	return &SnapshotService{snapshotRepo: snapshotRepo, aggregation: aggregation}
}

// Append consolidates the client's current positions and records the result
// as a new history row. Totals are recorded in the hub currency with the
// rates in force captured alongside.
func (s *SnapshotService) Append(clientID string, mode SubtotalMode) (model.Snapshot, error) {
	return s.record(clientID, mode, false)
}

// SaveLive records the current total as the client's single ephemeral
// preview row, replacing any previous one. Live rows never appear in
// history or latest queries.
func (s *SnapshotService) SaveLive(clientID string, mode SubtotalMode) (model.Snapshot, error) {
	return s.record(clientID, mode, true)
}

func (s *SnapshotService) record(clientID string, mode SubtotalMode, isLive bool) (model.Snapshot, error) {
	breakdown, err := s.aggregation.Consolidate(clientID, model.Hub, mode)
	if err != nil {
		return model.Snapshot{}, err
	}

	snapshot := model.Snapshot{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		CreatedAt: time.Now().UTC(),
		IsLive:    isLive,

		CashTotal:      breakdown.Totals[model.AssetCash],
		EquityTotal:    breakdown.Totals[model.AssetEquity],
		BondTotal:      breakdown.Totals[model.AssetBond],
		NoteTotal:      breakdown.Totals[model.AssetNote],
		RecurringTotal: breakdown.Totals[model.AssetRecurring],
		InsuranceTotal: breakdown.Totals[model.AssetInsurance],
		GrandTotal:     breakdown.Grand,

		Currencies: snapshotCurrencies(breakdown),
	}

	if err := s.snapshotRepo.Append(snapshot); err != nil {
		return model.Snapshot{}, err
	}
	return snapshot, nil
}

// snapshotCurrencies captures the per-currency cash amounts and the rates in
// force, so a history row stays interpretable after rates move on.
func snapshotCurrencies(breakdown Breakdown) []model.SnapshotCurrency {
	amounts := cashByCurrency(breakdown.Cash)

	currencies := make([]model.SnapshotCurrency, 0, len(amounts))
	for cur, amount := range amounts {
		currencies = append(currencies, model.SnapshotCurrency{
			Currency:   cur,
			CashAmount: amount,
			Rate:       breakdown.Rates.Rate(cur),
		})
	}
	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].Currency < currencies[j].Currency
	})
	return currencies
}

// Latest returns the newest non-live snapshot, or nil with no history.
func (s *SnapshotService) Latest(clientID string) (*model.Snapshot, error) {
	return s.snapshotRepo.Latest(clientID)
}

// History returns all non-live snapshots, oldest first.
func (s *SnapshotService) History(clientID string) ([]model.Snapshot, error) {
	return s.snapshotRepo.History(clientID)
}

// Get returns one snapshot by ID, live or not.
func (s *SnapshotService) Get(snapshotID string) (model.Snapshot, error) {
	return s.snapshotRepo.Get(snapshotID)
}

// Live returns the client's current preview row, or nil when none exists.
func (s *SnapshotService) Live(clientID string) (*model.Snapshot, error) {
	return s.snapshotRepo.Live(clientID)
}
