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

// EquityHandler handles HTTP requests for equity position endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the equityService.
type EquityHandler struct {
	equityService *service.EquityService
}

// NewEquityHandler creates a new EquityHandler with the provided service dependency.
func NewEquityHandler(equityService *service.EquityService) *EquityHandler {
	return &EquityHandler{
		equityService: equityService,
	}
}

func equityFromRequest(req request.EquityPositionRequest) model.EquityPosition {
	return model.EquityPosition{
		Currency:     model.Currency(req.Currency),
		Market:       req.Market,
		Symbol:       req.Symbol,
		Name:         req.Name,
		Shares:       req.Shares,
		CostPerShare: req.CostPerShare,
		CurrentPrice: req.CurrentPrice,
	}
}

// Positions handles GET requests to retrieve all of a client's equity positions.
//
// Endpoint: GET /api/client/{uuid}/equity
// Response: 200 OK with array of EquityPosition
// Error: 500 Internal Server Error if retrieval fails
func (h *EquityHandler) Positions(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	positions, err := h.equityService.GetPositions(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, positions)
}

// CreatePosition handles POST requests to create an equity position.
// The position is revalued from its raw fields before it is stored.
//
// Endpoint: POST /api/client/{uuid}/equity
// Request Body: EquityPositionRequest
// Response: 201 Created with EquityPosition
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *EquityHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.EquityPositionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateEquityPosition(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	position := equityFromRequest(req)
	position.ClientID = clientID

	created, err := h.equityService.CreatePosition(position)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, created)
}

// GetPosition handles GET requests to retrieve a single equity position.
//
// Endpoint: GET /api/equity/{uuid}
// Response: 200 OK with EquityPosition
// Error: 404 Not Found if the position does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *EquityHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "uuid")

	position, err := h.equityService.GetPosition(positionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, position)
}

// UpdatePosition handles PUT requests to overwrite an equity position.
// Derived fields are recomputed from the submitted raw fields.
//
// Endpoint: PUT /api/equity/{uuid}
// Request Body: EquityPositionRequest
// Response: 200 OK with EquityPosition
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the position does not exist
// Error: 500 Internal Server Error if the update fails
func (h *EquityHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.EquityPositionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateEquityPosition(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	existing, err := h.equityService.GetPosition(positionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	position := equityFromRequest(req)
	position.ID = existing.ID
	position.ClientID = existing.ClientID

	updated, err := h.equityService.UpdatePosition(position)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, updated)
}

// DeletePosition handles DELETE requests to remove an equity position.
//
// Endpoint: DELETE /api/equity/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the position does not exist
// Error: 500 Internal Server Error if the delete fails
func (h *EquityHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "uuid")

	if err := h.equityService.DeletePosition(positionID); err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete position", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// RefreshPrices handles POST requests to pull live prices for every symbol a
// client holds and revalue the affected positions. Symbols with no feed
// result keep their current price.
//
// Endpoint: POST /api/client/{uuid}/equity/refresh-prices
// Response: 200 OK with array of updated EquityPosition
// Error: 502 Bad Gateway if the price feed is unavailable
// Error: 500 Internal Server Error if the refresh fails
func (h *EquityHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	updated, err := h.equityService.RefreshPrices(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFeedUnavailable) {
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrFeedUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh prices", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, updated)
}
