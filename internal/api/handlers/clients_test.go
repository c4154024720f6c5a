package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/testutil"
)

func TestClientHandler_CreateClient(t *testing.T) {
	setupHandler := func(t *testing.T) *ClientHandler {
		t.Helper()
		db := testutil.SetupTestDB(t)
		return NewClientHandler(testutil.NewTestClientService(t, db))
	}

	t.Run("registers a client with a parsed birth date", func(t *testing.T) {
		handler := setupHandler(t)

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPost, "/api/client",
			map[string]string{"name": "Alice", "birthDate": "1980-06-15"}, nil)
		w := httptest.NewRecorder()

		handler.CreateClient(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var client model.Client
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&client)

		if client.Name != "Alice" {
			t.Errorf("Expected name 'Alice', got '%s'", client.Name)
		}
		if client.ID == "" {
			t.Error("Expected a generated client ID")
		}
		if client.BirthDate.Year() != 1980 {
			t.Errorf("Expected birth year 1980, got %d", client.BirthDate.Year())
		}
	})

	t.Run("rejects a malformed birth date", func(t *testing.T) {
		handler := setupHandler(t)

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPost, "/api/client",
			map[string]string{"name": "Alice", "birthDate": "15/06/1980"}, nil)
		w := httptest.NewRecorder()

		handler.CreateClient(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		handler := setupHandler(t)

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPost, "/api/client",
			map[string]string{"birthDate": "1980-06-15"}, nil)
		w := httptest.NewRecorder()

		handler.CreateClient(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestClientHandler_GetClient(t *testing.T) {
	t.Run("returns 404 for an unknown client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewClientHandler(testutil.NewTestClientService(t, db))

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/client/"+testutil.MakeID(),
			map[string]string{"uuid": testutil.MakeID()})
		w := httptest.NewRecorder()

		handler.GetClient(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns a registered client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewClientHandler(testutil.NewTestClientService(t, db))
		seeded := testutil.NewClient().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/client/"+seeded.ID,
			map[string]string{"uuid": seeded.ID})
		w := httptest.NewRecorder()

		handler.GetClient(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var client model.Client
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&client)

		if client.ID != seeded.ID {
			t.Errorf("Expected client %s, got %s", seeded.ID, client.ID)
		}
	})
}
