package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/testutil"
)

// TestEquityService_RefreshPrices tests the bulk price refresh.
//
// WHY: The refresh touches many positions in one sweep and persists them in a
// single transaction. A symbol the feed returns nothing for must keep its
// manually entered price rather than getting zeroed.
func TestEquityService_RefreshPrices(t *testing.T) {
	t.Run("applies feed prices and revalues", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		feed := testutil.NewMockQuoteFeed(map[string]string{"VOO": "520.50"})
		svc := testutil.NewTestEquityService(t, db, feed)

		client := testutil.NewClient().Build(t, db)
		seeded := testutil.SeedEquity(t, db, model.EquityPosition{
			ClientID: client.ID, Currency: model.USD, Symbol: "VOO",
			Shares: "10", CostPerShare: "400", CurrentPrice: "500",
		})

		// Execute
		updated, err := svc.RefreshPrices(context.Background(), client.ID)

		// Assert
		if err != nil {
			t.Fatalf("RefreshPrices() returned unexpected error: %v", err)
		}
		if len(updated) != 1 {
			t.Fatalf("Expected 1 updated position, got %d", len(updated))
		}
		if updated[0].CurrentPrice != "520.50" {
			t.Errorf("Current price = %q, want %q", updated[0].CurrentPrice, "520.50")
		}
		if !updated[0].MarketValue.Equal(decimal.RequireFromString("5205")) {
			t.Errorf("Market value = %s, want 5205", updated[0].MarketValue)
		}

		stored, err := svc.GetPosition(seeded.ID)
		if err != nil {
			t.Fatalf("GetPosition() returned unexpected error: %v", err)
		}
		if stored.CurrentPrice != "520.50" {
			t.Errorf("Stored current price = %q, want %q", stored.CurrentPrice, "520.50")
		}
	})

	t.Run("symbols with no feed result keep their price", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		feed := testutil.NewMockQuoteFeed(map[string]string{"VOO": "520.50"})
		svc := testutil.NewTestEquityService(t, db, feed)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedEquity(t, db, model.EquityPosition{
			ClientID: client.ID, Currency: model.USD, Symbol: "VOO",
			Shares: "10", CostPerShare: "400", CurrentPrice: "500",
		})
		unlisted := testutil.SeedEquity(t, db, model.EquityPosition{
			ClientID: client.ID, Currency: model.USD, Symbol: "PRIVATECO",
			Shares: "100", CostPerShare: "10", CurrentPrice: "12",
		})

		// Execute
		updated, err := svc.RefreshPrices(context.Background(), client.ID)

		// Assert
		if err != nil {
			t.Fatalf("RefreshPrices() returned unexpected error: %v", err)
		}
		if len(updated) != 1 {
			t.Fatalf("Expected 1 updated position, got %d", len(updated))
		}

		stored, err := svc.GetPosition(unlisted.ID)
		if err != nil {
			t.Fatalf("GetPosition() returned unexpected error: %v", err)
		}
		if stored.CurrentPrice != "12" {
			t.Errorf("Unlisted current price = %q, want %q (unchanged)", stored.CurrentPrice, "12")
		}
	})

	t.Run("feed failure leaves positions untouched", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		feed := testutil.NewMockQuoteFeed(nil).WithError(apperrors.ErrFeedUnavailable)
		svc := testutil.NewTestEquityService(t, db, feed)

		client := testutil.NewClient().Build(t, db)
		seeded := testutil.SeedEquity(t, db, model.EquityPosition{
			ClientID: client.ID, Currency: model.USD, Symbol: "VOO",
			Shares: "10", CostPerShare: "400", CurrentPrice: "500",
		})

		// Execute
		_, err := svc.RefreshPrices(context.Background(), client.ID)

		// Assert
		if !errors.Is(err, apperrors.ErrFeedUnavailable) {
			t.Fatalf("Expected ErrFeedUnavailable, got %v", err)
		}

		stored, err := svc.GetPosition(seeded.ID)
		if err != nil {
			t.Fatalf("GetPosition() returned unexpected error: %v", err)
		}
		if stored.CurrentPrice != "500" {
			t.Errorf("Stored current price = %q, want %q (unchanged)", stored.CurrentPrice, "500")
		}
	})

	t.Run("no symbols short-circuits without querying the feed", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		feed := testutil.NewMockQuoteFeed(nil)
		svc := testutil.NewTestEquityService(t, db, feed)

		client := testutil.NewClient().Build(t, db)

		// Execute
		updated, err := svc.RefreshPrices(context.Background(), client.ID)

		// Assert
		if err != nil {
			t.Fatalf("RefreshPrices() returned unexpected error: %v", err)
		}
		if len(updated) != 0 {
			t.Errorf("Expected no updated positions, got %d", len(updated))
		}
		if feed.QueryCount != 0 {
			t.Errorf("Expected no feed queries, got %d", feed.QueryCount)
		}
	})
}
