package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fx"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/testutil"
)

// TestRatesService_Refresh tests feed-driven rate replacement.
//
// WHY: Every conversion in the system reads the stored rate set, so a failed
// feed pull must never leave the client with a partial or empty set. The
// replacement is all-or-nothing.
func TestRatesService_Refresh(t *testing.T) {
	t.Run("replaces the stored set from the feed", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits := testutil.NewTestBenefitService(t, db)
		feed := testutil.NewMockRateFeed(fx.RateSet{
			model.TWD: decimal.RequireFromString("31.5"),
			model.JPY: decimal.RequireFromString("155"),
		})
		svc := testutil.NewTestRatesService(t, db, feed, benefits)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedRates(t, db, client.ID, map[model.Currency]string{model.TWD: "30"})

		// Execute
		rates, err := svc.Refresh(context.Background(), client.ID)

		// Assert
		if err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}
		if !rates.Rate(model.TWD).Equal(decimal.RequireFromString("31.5")) {
			t.Errorf("TWD rate = %s, want 31.5", rates.Rate(model.TWD))
		}

		stored, err := svc.GetSet(client.ID)
		if err != nil {
			t.Fatalf("GetSet() returned unexpected error: %v", err)
		}
		if len(stored) != 2 {
			t.Errorf("Expected 2 stored rates, got %d", len(stored))
		}
		if !stored.Rate(model.JPY).Equal(decimal.RequireFromString("155")) {
			t.Errorf("Stored JPY rate = %s, want 155", stored.Rate(model.JPY))
		}
	})

	t.Run("feed failure leaves the stored set untouched", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits := testutil.NewTestBenefitService(t, db)
		feed := testutil.NewMockRateFeed(nil).WithError(apperrors.ErrFeedUnavailable)
		svc := testutil.NewTestRatesService(t, db, feed, benefits)

		client := testutil.NewClient().Build(t, db)
		testutil.SeedRates(t, db, client.ID, map[model.Currency]string{model.TWD: "30"})

		// Execute
		_, err := svc.Refresh(context.Background(), client.ID)

		// Assert
		if !errors.Is(err, apperrors.ErrFeedUnavailable) {
			t.Fatalf("Expected ErrFeedUnavailable, got %v", err)
		}

		stored, err := svc.GetSet(client.ID)
		if err != nil {
			t.Fatalf("GetSet() returned unexpected error: %v", err)
		}
		if !stored.Rate(model.TWD).Equal(decimal.RequireFromString("30")) {
			t.Errorf("Stored TWD rate = %s, want 30 (unchanged)", stored.Rate(model.TWD))
		}
	})

	t.Run("returns not found for an unknown client", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits := testutil.NewTestBenefitService(t, db)
		svc := testutil.NewTestRatesService(t, db, testutil.NewMockRateFeed(nil), benefits)

		// Execute
		_, err := svc.Refresh(context.Background(), testutil.MakeID())

		// Assert
		if !errors.Is(err, apperrors.ErrClientNotFound) {
			t.Errorf("Expected ErrClientNotFound, got %v", err)
		}
	})
}

// TestRatesService_SetManual tests manually entered rate sets.
func TestRatesService_SetManual(t *testing.T) {
	t.Run("stores tolerantly parsed rates with the manual source", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits := testutil.NewTestBenefitService(t, db)
		svc := testutil.NewTestRatesService(t, db, testutil.NewMockRateFeed(nil), benefits)

		client := testutil.NewClient().Build(t, db)

		// Execute
		rates, err := svc.SetManual(client.ID, map[model.Currency]string{
			model.TWD: "1,234.5",
			model.EUR: "0.92",
		})

		// Assert
		if err != nil {
			t.Fatalf("SetManual() returned unexpected error: %v", err)
		}
		if !rates.Rate(model.TWD).Equal(decimal.RequireFromString("1234.5")) {
			t.Errorf("TWD rate = %s, want 1234.5", rates.Rate(model.TWD))
		}

		rows, err := svc.GetRates(client.ID)
		if err != nil {
			t.Fatalf("GetRates() returned unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("Expected 2 rate rows, got %d", len(rows))
		}
		for _, row := range rows {
			if row.Source != "manual" {
				t.Errorf("Rate source = %q, want %q", row.Source, "manual")
			}
		}
	})

	t.Run("rejects the hub currency and non-positive rates", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		benefits := testutil.NewTestBenefitService(t, db)
		svc := testutil.NewTestRatesService(t, db, testutil.NewMockRateFeed(nil), benefits)

		client := testutil.NewClient().Build(t, db)

		cases := []map[model.Currency]string{
			{model.USD: "1"},
			{model.TWD: "0"},
			{model.TWD: "-5"},
			{model.TWD: "not a number"},
			{},
		}

		// Execute / Assert
		for _, raw := range cases {
			if _, err := svc.SetManual(client.ID, raw); !errors.Is(err, apperrors.ErrInvalidCurrency) {
				t.Errorf("SetManual(%v): expected ErrInvalidCurrency, got %v", raw, err)
			}
		}
	})
}
