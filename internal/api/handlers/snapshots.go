package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
)

// SnapshotHandler handles HTTP requests for snapshot ledger endpoints.
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler with the provided service dependency.
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

func subtotalMode(w http.ResponseWriter, r *http.Request) (service.SubtotalMode, bool) {
	mode, err := service.ParseSubtotalMode(r.URL.Query().Get("mode"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSubtotalMode.Error(), r.URL.Query().Get("mode"))
		return "", false
	}
	return mode, true
}

// Append handles POST requests to consolidate the client's current positions
// and append the result to the snapshot history. The optional mode query
// parameter selects computed (default) or declared subtotals.
//
// Endpoint: POST /api/client/{uuid}/snapshot?mode=declared
// Response: 201 Created with Snapshot
// Error: 400 Bad Request if the mode is unknown
// Error: 404 Not Found if the client does not exist
// Error: 500 Internal Server Error if the snapshot cannot be recorded
func (h *SnapshotHandler) Append(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	mode, ok := subtotalMode(w, r)
	if !ok {
		return
	}

	snapshot, err := h.snapshotService.Append(clientID, mode)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, snapshot)
}

// SaveLive handles POST requests to record the current total as the client's
// single ephemeral preview row, replacing any previous one. Live rows never
// appear in history or latest queries.
//
// Endpoint: POST /api/client/{uuid}/snapshot/live?mode=declared
// Response: 200 OK with Snapshot
// Error: 400 Bad Request if the mode is unknown
// Error: 404 Not Found if the client does not exist
// Error: 500 Internal Server Error if the snapshot cannot be recorded
func (h *SnapshotHandler) SaveLive(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	mode, ok := subtotalMode(w, r)
	if !ok {
		return
	}

	snapshot, err := h.snapshotService.SaveLive(clientID, mode)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}

// History handles GET requests to retrieve all of a client's non-live
// snapshots, newest first.
//
// Endpoint: GET /api/client/{uuid}/snapshot
// Response: 200 OK with array of Snapshot
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) History(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	snapshots, err := h.snapshotService.History(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}

// Latest handles GET requests to retrieve the newest non-live snapshot, or
// 204 No Content when the client has no history yet.
//
// Endpoint: GET /api/client/{uuid}/snapshot/latest
// Response: 200 OK with Snapshot, or 204 No Content
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) Latest(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	snapshot, err := h.snapshotService.Latest(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}
	if snapshot == nil {
		response.RespondJSON(w, http.StatusNoContent, nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}

// Live handles GET requests to retrieve the client's current preview row, or
// 204 No Content when none exists.
//
// Endpoint: GET /api/client/{uuid}/snapshot/live
// Response: 200 OK with Snapshot, or 204 No Content
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) Live(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	snapshot, err := h.snapshotService.Live(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}
	if snapshot == nil {
		response.RespondJSON(w, http.StatusNoContent, nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}

// Get handles GET requests to retrieve one snapshot by ID.
//
// Endpoint: GET /api/snapshot/{uuid}
// Response: 200 OK with Snapshot
// Error: 404 Not Found if the snapshot does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshotID := chi.URLParam(r, "uuid")

	snapshot, err := h.snapshotService.Get(snapshotID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSnapshotNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSnapshotNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}
