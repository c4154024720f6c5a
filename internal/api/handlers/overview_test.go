package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/testutil"
)

func TestOverviewHandler_Overview(t *testing.T) {
	t.Run("returns the consolidated breakdown", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewOverviewHandler(testutil.NewTestAggregationService(t, db))

		client := testutil.NewClient().Build(t, db)
		testutil.SeedRates(t, db, client.ID, map[model.Currency]string{model.TWD: "32"})
		testutil.SeedCash(t, db, client.ID, model.USD, "1000")
		testutil.SeedCash(t, db, client.ID, model.TWD, "3200")

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/client/"+client.ID+"/overview",
			map[string]string{"uuid": client.ID})
		w := httptest.NewRecorder()

		handler.Overview(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var breakdown service.Breakdown
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&breakdown)

		if breakdown.Currency != model.USD {
			t.Errorf("Expected display currency USD, got %s", breakdown.Currency)
		}
		if !breakdown.Grand.Equal(decimal.RequireFromString("1100")) {
			t.Errorf("Grand total = %s, want 1100", breakdown.Grand)
		}
		if len(breakdown.Cash) != 2 {
			t.Errorf("Expected 2 cash balances, got %d", len(breakdown.Cash))
		}
	})

	t.Run("rejects an unsupported display currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewOverviewHandler(testutil.NewTestAggregationService(t, db))
		client := testutil.NewClient().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/client/"+client.ID+"/overview?currency=EUR",
			map[string]string{"uuid": client.ID})
		w := httptest.NewRecorder()

		handler.Overview(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects an unknown subtotal mode", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewOverviewHandler(testutil.NewTestAggregationService(t, db))
		client := testutil.NewClient().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/client/"+client.ID+"/overview?mode=estimated",
			map[string]string{"uuid": client.ID})
		w := httptest.NewRecorder()

		handler.Overview(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for an unknown client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewOverviewHandler(testutil.NewTestAggregationService(t, db))
		unknown := testutil.MakeID()

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/client/"+unknown+"/overview",
			map[string]string{"uuid": unknown})
		w := httptest.NewRecorder()

		handler.Overview(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
