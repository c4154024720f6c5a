package service_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/testutil"
)

// newBenefitFixture wires an insurance service and a rates service around one
// shared benefit cache, so tests can exercise the
// mutation-then-invalidation paths end to end.
func newBenefitFixture(t *testing.T, db *sql.DB) (*service.BenefitService, *service.InsuranceService, *service.RatesService) {
	t.Helper()

	benefits := testutil.NewTestBenefitService(t, db)
	insurance := service.NewInsuranceService(
		repository.NewInsuranceRepository(db),
		repository.NewClientRepository(db),
		benefits,
	)
	rates := testutil.NewTestRatesService(t, db, testutil.NewMockRateFeed(nil), benefits)
	return benefits, insurance, rates
}

// TestBenefitService_Table tests projection-table construction.
//
// WHY: The benefit table powers the age slider on the dashboard; a wrong
// entry shows a client the wrong projected benefit. These cases pin down the
// dense layout, the summing across calculators, and the currency conversion.
func TestBenefitService_Table(t *testing.T) {
	t.Run("sums benefits across calculators by insurance age", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits, insurance, _ := newBenefitFixture(t, db)

		// Born 1985-03-10, both policies start at insurance age 30.
		client := testutil.NewClient().Build(t, db)
		start := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)

		if _, err := insurance.CreateCalculator(client.ID, "Acme Life", "Whole Life", model.USD, start, []string{"1000", "2000"}); err != nil {
			t.Fatalf("CreateCalculator() returned unexpected error: %v", err)
		}
		if _, err := insurance.CreateCalculator(client.ID, "Acme Life", "Term Rider", model.USD, start, []string{"500"}); err != nil {
			t.Fatalf("CreateCalculator() returned unexpected error: %v", err)
		}

		// Execute
		table, err := benefits.Table(client.ID, model.USD)

		// Assert
		if err != nil {
			t.Fatalf("Table() returned unexpected error: %v", err)
		}
		if len(table) != model.MaxInsuranceAge+1 {
			t.Fatalf("Expected %d table entries, got %d", model.MaxInsuranceAge+1, len(table))
		}

		if !table[30].Equal(decimal.RequireFromString("1500")) {
			t.Errorf("Benefit at age 30 = %s, want 1500", table[30])
		}
		if !table[31].Equal(decimal.RequireFromString("2000")) {
			t.Errorf("Benefit at age 31 = %s, want 2000", table[31])
		}
		if !table[29].IsZero() {
			t.Errorf("Benefit at age 29 = %s, want 0", table[29])
		}
	})

	t.Run("converts benefits to the display currency", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits, insurance, _ := newBenefitFixture(t, db)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedRates(t, db, client.ID, map[model.Currency]string{model.TWD: "32"})
		start := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)

		if _, err := insurance.CreateCalculator(client.ID, "Formosa Life", "Endowment", model.TWD, start, []string{"3200"}); err != nil {
			t.Fatalf("CreateCalculator() returned unexpected error: %v", err)
		}

		// Execute
		value, err := benefits.Lookup(client.ID, model.USD, 30)

		// Assert
		if err != nil {
			t.Fatalf("Lookup() returned unexpected error: %v", err)
		}
		if !value.Equal(decimal.RequireFromString("100")) {
			t.Errorf("Benefit at age 30 in USD = %s, want 100", value)
		}
	})

	t.Run("rejects out-of-range ages", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits, _, _ := newBenefitFixture(t, db)
		client := testutil.NewClient().Build(t, db)

		// Execute / Assert
		for _, age := range []int{-1, model.MaxInsuranceAge + 1} {
			if _, err := benefits.Lookup(client.ID, model.USD, age); !errors.Is(err, apperrors.ErrInvalidAge) {
				t.Errorf("Lookup(age=%d): expected ErrInvalidAge, got %v", age, err)
			}
		}
	})
}

// TestBenefitService_Invalidation tests cache lifecycle across mutations.
//
// WHY: A stale projection is worse than a slow one. The cache must be torn
// down whenever a calculator changes or the rate set is replaced, so a lookup
// after a mutation always equals an uncached recomputation.
func TestBenefitService_Invalidation(t *testing.T) {
	t.Run("moves from empty to ready on first query", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits, insurance, _ := newBenefitFixture(t, db)

		client := testutil.NewClient().Build(t, db)
		start := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
		if _, err := insurance.CreateCalculator(client.ID, "Acme Life", "Whole Life", model.USD, start, []string{"1000"}); err != nil {
			t.Fatalf("CreateCalculator() returned unexpected error: %v", err)
		}

		// Assert
		if state := benefits.State(client.ID, model.USD); state != service.CacheEmpty {
			t.Errorf("State before query = %s, want %s", state, service.CacheEmpty)
		}

		if _, err := benefits.Lookup(client.ID, model.USD, 30); err != nil {
			t.Fatalf("Lookup() returned unexpected error: %v", err)
		}

		if state := benefits.State(client.ID, model.USD); state != service.CacheReady {
			t.Errorf("State after query = %s, want %s", state, service.CacheReady)
		}
	})

	t.Run("calculator update invalidates and the next lookup sees it", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits, insurance, _ := newBenefitFixture(t, db)

		client := testutil.NewClient().Build(t, db)
		start := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
		calc, err := insurance.CreateCalculator(client.ID, "Acme Life", "Whole Life", model.USD, start, []string{"1000"})
		if err != nil {
			t.Fatalf("CreateCalculator() returned unexpected error: %v", err)
		}

		if _, err := benefits.Lookup(client.ID, model.USD, 30); err != nil {
			t.Fatalf("Lookup() returned unexpected error: %v", err)
		}

		// Execute: shift the start date a year, moving the base age to 31.
		newStart := time.Date(2016, 6, 1, 0, 0, 0, 0, time.UTC)
		if _, err := insurance.UpdateCalculator(calc.ID, calc.Company, calc.Product, calc.Currency, newStart, nil); err != nil {
			t.Fatalf("UpdateCalculator() returned unexpected error: %v", err)
		}

		// Assert
		if state := benefits.State(client.ID, model.USD); state != service.CacheEmpty {
			t.Errorf("State after update = %s, want %s", state, service.CacheEmpty)
		}

		value, err := benefits.Lookup(client.ID, model.USD, 31)
		if err != nil {
			t.Fatalf("Lookup() returned unexpected error: %v", err)
		}
		if !value.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("Benefit at age 31 after shift = %s, want 1000", value)
		}
	})

	t.Run("rate replacement invalidates every display currency", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits, insurance, rates := newBenefitFixture(t, db)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedRates(t, db, client.ID, map[model.Currency]string{model.TWD: "32"})
		start := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
		if _, err := insurance.CreateCalculator(client.ID, "Formosa Life", "Endowment", model.TWD, start, []string{"3200"}); err != nil {
			t.Fatalf("CreateCalculator() returned unexpected error: %v", err)
		}

		before, err := benefits.Lookup(client.ID, model.USD, 30)
		if err != nil {
			t.Fatalf("Lookup() returned unexpected error: %v", err)
		}
		if !before.Equal(decimal.RequireFromString("100")) {
			t.Fatalf("Benefit before rate change = %s, want 100", before)
		}

		// Execute
		if _, err := rates.SetManual(client.ID, map[model.Currency]string{model.TWD: "16"}); err != nil {
			t.Fatalf("SetManual() returned unexpected error: %v", err)
		}

		// Assert
		after, err := benefits.Lookup(client.ID, model.USD, 30)
		if err != nil {
			t.Fatalf("Lookup() returned unexpected error: %v", err)
		}
		if !after.Equal(decimal.RequireFromString("200")) {
			t.Errorf("Benefit after rate change = %s, want 200", after)
		}
	})
}
