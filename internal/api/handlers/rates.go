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
)

// RatesHandler handles HTTP requests for exchange-rate endpoints.
type RatesHandler struct {
	ratesService *service.RatesService
}

// NewRatesHandler creates a new RatesHandler with the provided service dependency.
func NewRatesHandler(ratesService *service.RatesService) *RatesHandler {
	return &RatesHandler{
		ratesService: ratesService,
	}
}

// Rates handles GET requests to retrieve a client's stored exchange rates
// with source and timestamp.
//
// Endpoint: GET /api/client/{uuid}/rates
// Response: 200 OK with array of ExchangeRate
// Error: 500 Internal Server Error if retrieval fails
func (h *RatesHandler) Rates(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	rates, err := h.ratesService.GetRates(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveRates.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rates)
}

// Refresh handles POST requests to fetch current rates from the external
// feed and replace the client's stored set. On feed failure the stored set
// is retained unchanged.
//
// Endpoint: POST /api/client/{uuid}/rates/refresh
// Response: 200 OK with the new rate set keyed by currency
// Error: 404 Not Found if the client does not exist
// Error: 502 Bad Gateway if the rate feed is unavailable
// Error: 500 Internal Server Error if the replacement fails
func (h *RatesHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	rates, err := h.ratesService.Refresh(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrFeedUnavailable) {
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrFeedUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveRates.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rates)
}

// SetRates handles PUT requests to manually replace a client's rate set.
// The set is replaced whole; a partial patch is never performed.
//
// Endpoint: PUT /api/client/{uuid}/rates
// Request Body: SetRatesRequest (rates keyed by currency code)
// Response: 200 OK with the new rate set keyed by currency
// Error: 400 Bad Request if a currency or rate is invalid
// Error: 404 Not Found if the client does not exist
// Error: 500 Internal Server Error if the replacement fails
func (h *RatesHandler) SetRates(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.SetRatesRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	raw := make(map[model.Currency]string, len(req.Rates))
	for code, value := range req.Rates {
		raw[model.Currency(code)] = value
	}

	rates, err := h.ratesService.SetManual(clientID, raw)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidCurrency) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCurrency.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveRates.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rates)
}
