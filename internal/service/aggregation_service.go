package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fx"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/numfmt"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/valuation"
)

// SubtotalMode selects how bond and note subtotals are sourced: computed
// aggregates per-position market values, declared prefers the manually
// maintained class totals. All other classes behave identically in both modes.
type SubtotalMode string

const (
	ModeComputed SubtotalMode = "computed"
	ModeDeclared SubtotalMode = "declared"
)

// ParseSubtotalMode maps a request value to a SubtotalMode. Empty means
// computed, the default mode.
func ParseSubtotalMode(raw string) (SubtotalMode, error) {
	switch SubtotalMode(raw) {
	case "":
		return ModeComputed, nil
	case ModeComputed, ModeDeclared:
		return SubtotalMode(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidSubtotalMode, raw)
	}
}

// Breakdown is one client's consolidated portfolio view: per-class subtotals
// and the grand total in the display currency, plus the per-currency cash
// amounts and the rates in force. The grand total is always the exact sum of
// the subtotals.
type Breakdown struct {
	Currency model.Currency                       `json:"currency"`
	Mode     SubtotalMode                         `json:"mode"`
	Totals   map[model.AssetClass]decimal.Decimal `json:"totals"`
	Grand    decimal.Decimal                      `json:"grandTotal"`
	Cash     []model.CashBalance                  `json:"cashBalances"`
	Rates    fx.RateSet                           `json:"rates"`
}

// AggregationService consolidates a client's positions across asset classes
// and currencies. Positions are converted individually and then summed, so a
// class subtotal over a mixed-currency book equals the sum of its members'
// converted values.
type AggregationService struct {
	clientRepo  *repository.ClientRepository
	cashRepo    *repository.CashRepository
	equityRepo  *repository.EquityRepository
	bondRepo    *repository.BondRepository
	noteRepo    *repository.NoteRepository
	holdingRepo *repository.HoldingRepository
	rateRepo    *repository.RateRepository
}

// NewAggregationService creates a new AggregationService with the provided repositories.
func NewAggregationService(
	clientRepo *repository.ClientRepository,
	cashRepo *repository.CashRepository,
	equityRepo *repository.EquityRepository,
	bondRepo *repository.BondRepository,
	noteRepo *repository.NoteRepository,
	holdingRepo *repository.HoldingRepository,
	rateRepo *repository.RateRepository,
) *AggregationService {
	return &AggregationService{
		clientRepo:  clientRepo,
		cashRepo:    cashRepo,
		equityRepo:  equityRepo,
		bondRepo:    bondRepo,
		noteRepo:    noteRepo,
		holdingRepo: holdingRepo,
		rateRepo:    rateRepo,
	}
}

// Subtotal returns one asset class's total in the display currency.
func (s *AggregationService) Subtotal(clientID string, class model.AssetClass, currency model.Currency, rates fx.RateSet, mode SubtotalMode) (decimal.Decimal, error) {
	switch class {
	case model.AssetCash:
		return s.cashSubtotal(clientID, currency, rates)
	case model.AssetEquity:
		return s.equitySubtotal(clientID, currency, rates)
	case model.AssetBond:
		return s.bondSubtotal(clientID, currency, rates, mode)
	case model.AssetNote:
		return s.noteSubtotal(clientID, currency, rates)
	case model.AssetRecurring:
		return s.recurringSubtotal(clientID, currency, rates)
	case model.AssetInsurance:
		return s.insuranceSubtotal(clientID, currency, rates)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidAssetClass, class)
	}
}

// TotalValue returns the grand total across every asset class in the display
// currency.
func (s *AggregationService) TotalValue(clientID string, currency model.Currency, mode SubtotalMode) (decimal.Decimal, error) {
	breakdown, err := s.Consolidate(clientID, currency, mode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return breakdown.Grand, nil
}

// Consolidate builds the full per-class breakdown for a client. The grand
// total is computed by summing the class subtotals it returns, never
// independently, so the two can not drift apart.
func (s *AggregationService) Consolidate(clientID string, currency model.Currency, mode SubtotalMode) (Breakdown, error) {
	if _, err := s.clientRepo.GetClient(clientID); err != nil {
		return Breakdown{}, err
	}

	rates, err := s.rateRepo.GetSet(clientID)
	if err != nil {
		return Breakdown{}, err
	}

	breakdown := Breakdown{
		Currency: currency,
		Mode:     mode,
		Totals:   make(map[model.AssetClass]decimal.Decimal, len(model.AssetClasses)),
		Rates:    rates,
	}

	for _, class := range model.AssetClasses {
		subtotal, err := s.Subtotal(clientID, class, currency, rates, mode)
		if err != nil {
			return Breakdown{}, err
		}
		breakdown.Totals[class] = subtotal
		breakdown.Grand = breakdown.Grand.Add(subtotal)
	}

	if breakdown.Cash, err = s.cashRepo.GetBalances(clientID); err != nil {
		return Breakdown{}, err
	}
	return breakdown, nil
}

func (s *AggregationService) cashSubtotal(clientID string, currency model.Currency, rates fx.RateSet) (decimal.Decimal, error) {
	balances, err := s.cashRepo.GetBalances(clientID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	var total decimal.Decimal
	for _, b := range balances {
		total = total.Add(fx.Convert(valuation.CashValue(b), b.Currency, currency, rates))
	}
	return total, nil
}

func (s *AggregationService) equitySubtotal(clientID string, currency model.Currency, rates fx.RateSet) (decimal.Decimal, error) {
	positions, err := s.equityRepo.GetPositions(clientID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	var total decimal.Decimal
	for _, p := range positions {
		total = total.Add(fx.Convert(p.MarketValue, p.Currency, currency, rates))
	}
	return total, nil
}

// bondSubtotal sums per-position values in computed mode. In declared mode
// the latest manually entered bond total wins; it is recorded in the hub
// currency. With no update on record declared mode falls back to computed.
func (s *AggregationService) bondSubtotal(clientID string, currency model.Currency, rates fx.RateSet, mode SubtotalMode) (decimal.Decimal, error) {
	if mode == ModeDeclared {
		update, err := s.bondRepo.LatestUpdate(clientID)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if update != nil {
			return fx.Convert(update.Total, model.Hub, currency, rates), nil
		}
	}

	positions, err := s.bondRepo.GetPositions(clientID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	var total decimal.Decimal
	for _, p := range positions {
		total = total.Add(fx.Convert(valuation.BondMarketValue(p), p.Currency, currency, rates))
	}
	return total, nil
}

// noteSubtotal sums note notionals. Exited notes value to zero, so they drop
// out of the total while staying on the books.
func (s *AggregationService) noteSubtotal(clientID string, currency model.Currency, rates fx.RateSet) (decimal.Decimal, error) {
	notes, err := s.noteRepo.GetNotes(clientID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	var total decimal.Decimal
	for _, n := range notes {
		total = total.Add(fx.Convert(valuation.NoteMarketValue(n), n.Currency, currency, rates))
	}
	return total, nil
}

func (s *AggregationService) recurringSubtotal(clientID string, currency model.Currency, rates fx.RateSet) (decimal.Decimal, error) {
	plans, err := s.holdingRepo.GetPlans(clientID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	var total decimal.Decimal
	for _, p := range plans {
		total = total.Add(fx.Convert(valuation.PlanValue(p), p.Currency, currency, rates))
	}
	return total, nil
}

func (s *AggregationService) insuranceSubtotal(clientID string, currency model.Currency, rates fx.RateSet) (decimal.Decimal, error) {
	policies, err := s.holdingRepo.GetPolicies(clientID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	var total decimal.Decimal
	for _, p := range policies {
		total = total.Add(fx.Convert(valuation.PolicyValue(p), p.Currency, currency, rates))
	}
	return total, nil
}

// cashByCurrency returns the raw cash amount per currency, used when a
// snapshot records per-currency detail alongside the class totals.
func cashByCurrency(balances []model.CashBalance) map[model.Currency]decimal.Decimal {
	amounts := make(map[model.Currency]decimal.Decimal, len(balances))
	for _, b := range balances {
		amounts[b.Currency] = amounts[b.Currency].Add(numfmt.Parse(b.Amount))
	}
	return amounts
}
