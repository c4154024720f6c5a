package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/validation"
)

// BondHandler handles HTTP requests for bond position and bond update
// endpoints.
type BondHandler struct {
	bondService *service.BondService
}

// NewBondHandler creates a new BondHandler with the provided service dependency.
func NewBondHandler(bondService *service.BondService) *BondHandler {
	return &BondHandler{
		bondService: bondService,
	}
}

func bondFromRequest(req request.BondPositionRequest) model.BondPosition {
	return model.BondPosition{
		Currency:             model.Currency(req.Currency),
		Name:                 req.Name,
		FaceValue:            req.FaceValue,
		SubscriptionPricePct: req.SubscriptionPricePct,
		AccruedInterest:      req.AccruedInterest,
		CurrentValue:         req.CurrentValue,
		ReceivedInterest:     req.ReceivedInterest,
	}
}

// Positions handles GET requests to retrieve all of a client's bond positions.
//
// Endpoint: GET /api/client/{uuid}/bond
// Response: 200 OK with array of BondPosition
// Error: 500 Internal Server Error if retrieval fails
func (h *BondHandler) Positions(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	positions, err := h.bondService.GetPositions(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, positions)
}

// CreatePosition handles POST requests to create a bond position.
//
// Endpoint: POST /api/client/{uuid}/bond
// Request Body: BondPositionRequest
// Response: 201 Created with BondPosition
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *BondHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.BondPositionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateBondPosition(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	position := bondFromRequest(req)
	position.ClientID = clientID

	created, err := h.bondService.CreatePosition(position)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, created)
}

// UpdatePosition handles PUT requests to overwrite a bond position.
//
// Endpoint: PUT /api/bond/{uuid}
// Request Body: BondPositionRequest
// Response: 200 OK with BondPosition
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the position does not exist
// Error: 500 Internal Server Error if the update fails
func (h *BondHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.BondPositionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateBondPosition(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	existing, err := h.bondService.GetPosition(positionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	position := bondFromRequest(req)
	position.ID = existing.ID
	position.ClientID = existing.ClientID

	updated, err := h.bondService.UpdatePosition(position)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, updated)
}

// DeletePosition handles DELETE requests to remove a bond position.
//
// Endpoint: DELETE /api/bond/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the position does not exist
// Error: 500 Internal Server Error if the delete fails
func (h *BondHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "uuid")

	if err := h.bondService.DeletePosition(positionID); err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete position", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// AppendUpdate handles POST requests to append a manually entered aggregate
// bond total/interest record. Records are append-only: each save creates a
// new row, preserving the history of manual overrides.
//
// Endpoint: POST /api/client/{uuid}/bond-update
// Request Body: BondUpdateRequest (total, interest)
// Response: 201 Created with BondUpdate
// Error: 400 Bad Request if request body is invalid
// Error: 500 Internal Server Error if the write fails
func (h *BondHandler) AppendUpdate(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.BondUpdateRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	update, err := h.bondService.AppendUpdate(clientID, req.Total, req.Interest)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to save bond update", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, update)
}

// LatestUpdate handles GET requests to retrieve the newest bond update, or
// 204 No Content when none has been recorded yet.
//
// Endpoint: GET /api/client/{uuid}/bond-update/latest
// Response: 200 OK with BondUpdate, or 204 No Content
// Error: 500 Internal Server Error if retrieval fails
func (h *BondHandler) LatestUpdate(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	update, err := h.bondService.LatestUpdate(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve bond update", err.Error())
		return
	}
	if update == nil {
		response.RespondJSON(w, http.StatusNoContent, nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, update)
}

// UpdateHistory handles GET requests to retrieve all bond updates, newest
// first.
//
// Endpoint: GET /api/client/{uuid}/bond-update
// Response: 200 OK with array of BondUpdate
// Error: 500 Internal Server Error if retrieval fails
func (h *BondHandler) UpdateHistory(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	updates, err := h.bondService.UpdateHistory(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve bond updates", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, updates)
}
