package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/testutil"
)

// TestSnapshotService_Append tests the append-only snapshot ledger.
//
// WHY: Snapshots are the source of truth for historical trends. Every save
// must create a new row, never mutate an old one, and the recorded totals
// must capture the portfolio state at save time even after positions change.
func TestSnapshotService_Append(t *testing.T) {
	t.Run("each save appends a new history row", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedCash(t, db, client.ID, model.USD, "1000")

		// Execute
		first, err := svc.Append(client.ID, service.ModeComputed)
		if err != nil {
			t.Fatalf("Append() returned unexpected error: %v", err)
		}

		// Positions move, then a second save.
		testutil.SeedCash(t, db, client.ID, model.USD, "1500")

		second, err := svc.Append(client.ID, service.ModeComputed)
		if err != nil {
			t.Fatalf("Append() returned unexpected error: %v", err)
		}

		// Assert
		history, err := svc.History(client.ID)
		if err != nil {
			t.Fatalf("History() returned unexpected error: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("Expected 2 history rows, got %d", len(history))
		}

		if !first.GrandTotal.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("First grand total = %s, want 1000", first.GrandTotal)
		}
		if !second.GrandTotal.Equal(decimal.RequireFromString("1500")) {
			t.Errorf("Second grand total = %s, want 1500", second.GrandTotal)
		}

		// The earlier row is untouched by the later save.
		recorded, err := svc.Get(first.ID)
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if !recorded.GrandTotal.Equal(first.GrandTotal) {
			t.Errorf("Stored first grand total = %s, want %s", recorded.GrandTotal, first.GrandTotal)
		}
	})

	t.Run("captures per-currency cash and the rates in force", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedRates(t, db, client.ID, map[model.Currency]string{model.TWD: "32"})
		testutil.SeedCash(t, db, client.ID, model.TWD, "3200")
		testutil.SeedCash(t, db, client.ID, model.USD, "100")

		// Execute
		snapshot, err := svc.Append(client.ID, service.ModeComputed)

		// Assert
		if err != nil {
			t.Fatalf("Append() returned unexpected error: %v", err)
		}
		if len(snapshot.Currencies) != 2 {
			t.Fatalf("Expected 2 snapshot currencies, got %d", len(snapshot.Currencies))
		}

		// Sorted by currency: TWD before USD.
		twd := snapshot.Currencies[0]
		if twd.Currency != model.TWD {
			t.Fatalf("Expected TWD first, got %s", twd.Currency)
		}
		if !twd.CashAmount.Equal(decimal.RequireFromString("3200")) {
			t.Errorf("TWD cash amount = %s, want 3200", twd.CashAmount)
		}
		if !twd.Rate.Equal(decimal.RequireFromString("32")) {
			t.Errorf("TWD rate = %s, want 32", twd.Rate)
		}

		stored, err := svc.Get(snapshot.ID)
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if len(stored.Currencies) != 2 {
			t.Errorf("Expected 2 stored snapshot currencies, got %d", len(stored.Currencies))
		}
	})
}

// TestSnapshotService_Live tests the ephemeral preview row.
//
// WHY: The live row lets the dashboard show the current total without
// polluting history. It must be a singleton per client, replaced on every
// save and invisible to Latest and History.
func TestSnapshotService_Live(t *testing.T) {
	t.Run("saving live replaces the previous preview", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedCash(t, db, client.ID, model.USD, "1000")

		// Execute
		if _, err := svc.SaveLive(client.ID, service.ModeComputed); err != nil {
			t.Fatalf("SaveLive() returned unexpected error: %v", err)
		}

		testutil.SeedCash(t, db, client.ID, model.USD, "2000")

		if _, err := svc.SaveLive(client.ID, service.ModeComputed); err != nil {
			t.Fatalf("SaveLive() returned unexpected error: %v", err)
		}

		// Assert
		live, err := svc.Live(client.ID)
		if err != nil {
			t.Fatalf("Live() returned unexpected error: %v", err)
		}
		if live == nil {
			t.Fatal("Expected a live snapshot, got nil")
		}
		if !live.GrandTotal.Equal(decimal.RequireFromString("2000")) {
			t.Errorf("Live grand total = %s, want 2000", live.GrandTotal)
		}
	})

	t.Run("live rows are excluded from history and latest", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedCash(t, db, client.ID, model.USD, "1000")

		if _, err := svc.SaveLive(client.ID, service.ModeComputed); err != nil {
			t.Fatalf("SaveLive() returned unexpected error: %v", err)
		}

		// Execute
		history, err := svc.History(client.ID)
		if err != nil {
			t.Fatalf("History() returned unexpected error: %v", err)
		}
		latest, err := svc.Latest(client.ID)
		if err != nil {
			t.Fatalf("Latest() returned unexpected error: %v", err)
		}

		// Assert
		if len(history) != 0 {
			t.Errorf("Expected empty history, got %d rows", len(history))
		}
		if latest != nil {
			t.Errorf("Expected nil latest, got snapshot %s", latest.ID)
		}
	})

	t.Run("returns nil when no live preview exists", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		client := testutil.NewClient().Build(t, db)

		// Execute
		live, err := svc.Live(client.ID)

		// Assert
		if err != nil {
			t.Fatalf("Live() returned unexpected error: %v", err)
		}
		if live != nil {
			t.Errorf("Expected nil live snapshot, got %s", live.ID)
		}
	})
}
