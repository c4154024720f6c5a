package service_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/testutil"
)

// TestAggregationService_Consolidate tests the full portfolio consolidation.
//
// WHY: Consolidation is the core read path of the whole system. These cases
// pin down the conversion rules it is built on: positions convert
// individually before summing, exited notes contribute nothing, and the
// grand total is exactly the sum of the class subtotals.
func TestAggregationService_Consolidate(t *testing.T) {
	t.Run("converts mixed-currency positions individually", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAggregationService(t, db)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedRates(t, db, client.ID, map[model.Currency]string{
			model.TWD: "32",
			model.EUR: "0.5",
		})

		// 1000 USD + 3200 TWD (= 100 USD)
		testutil.SeedCash(t, db, client.ID, model.USD, "1000")
		testutil.SeedCash(t, db, client.ID, model.TWD, "3200")

		// 10 * 100 USD + 320 * 10 TWD (= 100 USD)
		testutil.SeedEquity(t, db, model.EquityPosition{
			ClientID: client.ID, Currency: model.USD, Symbol: "VOO",
			Shares: "10", CostPerShare: "50", CurrentPrice: "100",
		})
		testutil.SeedEquity(t, db, model.EquityPosition{
			ClientID: client.ID, Currency: model.TWD, Symbol: "2330.TW",
			Shares: "320", CostPerShare: "8", CurrentPrice: "10",
		})

		// Execute
		breakdown, err := svc.Consolidate(client.ID, model.Hub, service.ModeComputed)

		// Assert
		if err != nil {
			t.Fatalf("Consolidate() returned unexpected error: %v", err)
		}

		wantCash := decimal.RequireFromString("1100")
		if !breakdown.Totals[model.AssetCash].Equal(wantCash) {
			t.Errorf("Cash subtotal = %s, want %s", breakdown.Totals[model.AssetCash], wantCash)
		}

		wantEquity := decimal.RequireFromString("1100")
		if !breakdown.Totals[model.AssetEquity].Equal(wantEquity) {
			t.Errorf("Equity subtotal = %s, want %s", breakdown.Totals[model.AssetEquity], wantEquity)
		}

		var sum decimal.Decimal
		for _, subtotal := range breakdown.Totals {
			sum = sum.Add(subtotal)
		}
		if !breakdown.Grand.Equal(sum) {
			t.Errorf("Grand total = %s, want sum of subtotals %s", breakdown.Grand, sum)
		}
	})

	t.Run("excludes exited notes from the note subtotal", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAggregationService(t, db)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedNote(t, db, model.StructuredNote{
			ClientID: client.ID, Currency: model.USD,
			ProductName: "Active Note", TransactionAmount: "2000",
		})
		testutil.SeedNote(t, db, model.StructuredNote{
			ClientID: client.ID, Currency: model.USD,
			ProductName: "Exited Note", TransactionAmount: "5000", IsExited: true,
		})

		// Execute
		breakdown, err := svc.Consolidate(client.ID, model.Hub, service.ModeComputed)

		// Assert
		if err != nil {
			t.Fatalf("Consolidate() returned unexpected error: %v", err)
		}

		want := decimal.RequireFromString("2000")
		if !breakdown.Totals[model.AssetNote].Equal(want) {
			t.Errorf("Note subtotal = %s, want %s", breakdown.Totals[model.AssetNote], want)
		}
	})

	t.Run("renders totals in the secondary display currency", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAggregationService(t, db)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedRates(t, db, client.ID, map[model.Currency]string{model.TWD: "32"})
		testutil.SeedCash(t, db, client.ID, model.USD, "100")

		// Execute
		breakdown, err := svc.Consolidate(client.ID, model.TWD, service.ModeComputed)

		// Assert
		if err != nil {
			t.Fatalf("Consolidate() returned unexpected error: %v", err)
		}

		want := decimal.RequireFromString("3200")
		if !breakdown.Totals[model.AssetCash].Equal(want) {
			t.Errorf("Cash subtotal in TWD = %s, want %s", breakdown.Totals[model.AssetCash], want)
		}
	})

	t.Run("treats an unconvertible currency as zero", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAggregationService(t, db)

		// No rate seeded for EUR, so the EUR balance can not reach the hub.
		client := testutil.NewClient().Build(t, db)
		testutil.SeedCash(t, db, client.ID, model.USD, "500")
		testutil.SeedCash(t, db, client.ID, model.EUR, "400")

		// Execute
		breakdown, err := svc.Consolidate(client.ID, model.Hub, service.ModeComputed)

		// Assert
		if err != nil {
			t.Fatalf("Consolidate() returned unexpected error: %v", err)
		}

		want := decimal.RequireFromString("500")
		if !breakdown.Totals[model.AssetCash].Equal(want) {
			t.Errorf("Cash subtotal = %s, want %s", breakdown.Totals[model.AssetCash], want)
		}
	})

	t.Run("returns not found for an unknown client", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAggregationService(t, db)

		// Execute
		_, err := svc.Consolidate(testutil.MakeID(), model.Hub, service.ModeComputed)

		// Assert
		if !errors.Is(err, apperrors.ErrClientNotFound) {
			t.Errorf("Expected ErrClientNotFound, got %v", err)
		}
	})
}

// TestAggregationService_BondModes tests computed versus declared bond
// subtotals.
//
// WHY: The bond class is the only one whose subtotal can come from two
// sources. Declared mode must prefer the latest manual total and fall back to
// the computed sum when no manual total was ever entered.
func TestAggregationService_BondModes(t *testing.T) {
	seedBook := func(t *testing.T, db *sql.DB) model.Client {
		t.Helper()
		client := testutil.NewClient().Build(t, db)
		testutil.SeedBond(t, db, model.BondPosition{
			ClientID: client.ID, Currency: model.USD, Name: "Treasury 2030",
			FaceValue: "10000", SubscriptionPricePct: "98", CurrentValue: "10000",
		})
		return client
	}

	t.Run("computed mode sums per-position market values", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAggregationService(t, db)
		client := seedBook(t, db)

		// Execute
		breakdown, err := svc.Consolidate(client.ID, model.Hub, service.ModeComputed)

		// Assert
		if err != nil {
			t.Fatalf("Consolidate() returned unexpected error: %v", err)
		}

		want := decimal.RequireFromString("10000")
		if !breakdown.Totals[model.AssetBond].Equal(want) {
			t.Errorf("Bond subtotal = %s, want %s", breakdown.Totals[model.AssetBond], want)
		}
	})

	t.Run("declared mode prefers the latest manual total", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAggregationService(t, db)
		bonds := testutil.NewTestBondService(t, db)
		client := seedBook(t, db)

		if _, err := bonds.AppendUpdate(client.ID, "9,000", "150"); err != nil {
			t.Fatalf("AppendUpdate() returned unexpected error: %v", err)
		}
		if _, err := bonds.AppendUpdate(client.ID, "12,345.67", "150"); err != nil {
			t.Fatalf("AppendUpdate() returned unexpected error: %v", err)
		}

		// Execute
		breakdown, err := svc.Consolidate(client.ID, model.Hub, service.ModeDeclared)

		// Assert
		if err != nil {
			t.Fatalf("Consolidate() returned unexpected error: %v", err)
		}

		want := decimal.RequireFromString("12345.67")
		if !breakdown.Totals[model.AssetBond].Equal(want) {
			t.Errorf("Bond subtotal = %s, want %s", breakdown.Totals[model.AssetBond], want)
		}
	})

	t.Run("declared mode falls back to computed with no manual total", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAggregationService(t, db)
		client := seedBook(t, db)

		// Execute
		breakdown, err := svc.Consolidate(client.ID, model.Hub, service.ModeDeclared)

		// Assert
		if err != nil {
			t.Fatalf("Consolidate() returned unexpected error: %v", err)
		}

		want := decimal.RequireFromString("10000")
		if !breakdown.Totals[model.AssetBond].Equal(want) {
			t.Errorf("Bond subtotal = %s, want %s", breakdown.Totals[model.AssetBond], want)
		}
	})
}

// TestParseSubtotalMode tests request-value mapping for the subtotal mode.
func TestParseSubtotalMode(t *testing.T) {
	t.Run("empty defaults to computed", func(t *testing.T) {
		mode, err := service.ParseSubtotalMode("")
		if err != nil {
			t.Fatalf("ParseSubtotalMode(\"\") returned unexpected error: %v", err)
		}
		if mode != service.ModeComputed {
			t.Errorf("Expected computed, got %s", mode)
		}
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		_, err := service.ParseSubtotalMode("estimated")
		if !errors.Is(err, apperrors.ErrInvalidSubtotalMode) {
			t.Errorf("Expected ErrInvalidSubtotalMode, got %v", err)
		}
	})
}
