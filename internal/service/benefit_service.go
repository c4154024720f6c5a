package service

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fx"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
)

// CacheState names the lifecycle states of one benefit projection cache.
type CacheState string

const (
	// CacheEmpty means no table has been built for the key yet.
	CacheEmpty CacheState = "empty"
	// CacheBuilding means a rebuild is in progress.
	CacheBuilding CacheState = "building"
	// CacheReady means the table serves O(1) lookups.
	CacheReady CacheState = "ready"
)

// BenefitService maintains the benefit projection cache: for each (client,
// display currency) key, a dense table mapping insurance age 0..100 to the
// total benefit across all of the client's calculators, converted to the
// display currency.
//
// The cache is built lazily on first query and cleared by Invalidate, which
// the owners of the triggering mutations call: a start-date edit or row
// regeneration (InsuranceService) and a rate-set replacement (RatesService).
// A display-currency change needs no explicit signal since the currency is
// part of the key. Rebuilds are idempotent; repeated triggers in quick
// succession just rebuild the same pure function of stored state.
type BenefitService struct {
	insuranceRepo *repository.InsuranceRepository
	rateRepo      *repository.RateRepository

	mu     sync.Mutex
	caches map[string]*benefitCache
}

type benefitCache struct {
	state  CacheState
	values [model.MaxInsuranceAge + 1]decimal.Decimal
}

// NewBenefitService creates a new BenefitService with the provided repositories.
func NewBenefitService(insuranceRepo *repository.InsuranceRepository, rateRepo *repository.RateRepository) *BenefitService {
	return &BenefitService{
		insuranceRepo: insuranceRepo,
		rateRepo:      rateRepo,
		caches:        make(map[string]*benefitCache),
	}
}

func cacheKey(clientID string, currency model.Currency) string {
	return clientID + "|" + string(currency)
}

// Lookup returns the total projected benefit for one insurance age in the
// display currency, building the table first when necessary.
func (s *BenefitService) Lookup(clientID string, currency model.Currency, age int) (decimal.Decimal, error) {
	if age < 0 || age > model.MaxInsuranceAge {
		return decimal.Decimal{}, fmt.Errorf("%w: %d", apperrors.ErrInvalidAge, age)
	}
	cache, err := s.ready(clientID, currency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return cache.values[age], nil
}

// Table returns the full age-indexed benefit table in the display currency.
func (s *BenefitService) Table(clientID string, currency model.Currency) ([]decimal.Decimal, error) {
	cache, err := s.ready(clientID, currency)
	if err != nil {
		return nil, err
	}
	values := make([]decimal.Decimal, len(cache.values))
	copy(values, cache.values[:])
	return values, nil
}

// State reports the cache state for a key without triggering a build.
func (s *BenefitService) State(clientID string, currency model.Currency) CacheState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cache, ok := s.caches[cacheKey(clientID, currency)]; ok {
		return cache.state
	}
	return CacheEmpty
}

// Invalidate clears every cached table for a client, across all display
// currencies. The next query rebuilds from stored state.
func (s *BenefitService) Invalidate(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cur := range model.Currencies {
		delete(s.caches, cacheKey(clientID, cur))
	}
}

// ready returns the Ready cache for a key, building it when the key is empty.
// The lock is held across the build: rebuilds are cheap (one table scan per
// calculator) and this keeps concurrent triggers strictly last-write-wins.
func (s *BenefitService) ready(clientID string, currency model.Currency) (*benefitCache, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := cacheKey(clientID, currency)
	if cache, ok := s.caches[key]; ok && cache.state == CacheReady {
		return cache, nil
	}

	cache := &benefitCache{state: CacheBuilding}
	s.caches[key] = cache

	if err := s.build(cache, clientID, currency); err != nil {
		delete(s.caches, key)
		return nil, err
	}
	cache.state = CacheReady
	return cache, nil
}

// build fills a cache table: for every age, the sum over all calculators of
// the benefit at the row matching that insurance age, converted from the
// calculator's native currency to the display currency.
func (s *BenefitService) build(cache *benefitCache, clientID string, currency model.Currency) error {
	rates, err := s.rateRepo.GetSet(clientID)
	if err != nil {
		return err
	}
	calculators, err := s.insuranceRepo.GetCalculators(clientID)
	if err != nil {
		return err
	}

	for _, calc := range calculators {
		rows, err := s.insuranceRepo.GetRows(calc.ID)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if row.InsuranceAge < 0 || row.InsuranceAge > model.MaxInsuranceAge {
				continue
			}
			converted := fx.Convert(row.Benefit, calc.Currency, currency, rates)
			cache.values[row.InsuranceAge] = cache.values[row.InsuranceAge].Add(converted)
		}
	}
	return nil
}
