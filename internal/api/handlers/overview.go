package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
)

// OverviewHandler handles HTTP requests for the consolidated portfolio view.
type OverviewHandler struct {
	aggregationService *service.AggregationService
}

// NewOverviewHandler creates a new OverviewHandler with the provided service dependency.
func NewOverviewHandler(aggregationService *service.AggregationService) *OverviewHandler {
	return &OverviewHandler{
		aggregationService: aggregationService,
	}
}

// Overview handles GET requests to retrieve a client's consolidated
// breakdown: per-class subtotals, grand total, per-currency cash and the
// rates in force. The currency query parameter selects the display currency
// (hub default); mode selects computed (default) or declared subtotals.
//
// Endpoint: GET /api/client/{uuid}/overview?currency=TWD&mode=declared
// Response: 200 OK with Breakdown
// Error: 400 Bad Request if the currency or mode is invalid
// Error: 404 Not Found if the client does not exist
// Error: 500 Internal Server Error if consolidation fails
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	currency, ok := model.DisplayCurrency(model.Currency(r.URL.Query().Get("currency")))
	if !ok {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDisplayCurrency.Error(), r.URL.Query().Get("currency"))
		return
	}

	mode, err := service.ParseSubtotalMode(r.URL.Query().Get("mode"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSubtotalMode.Error(), r.URL.Query().Get("mode"))
		return
	}

	breakdown, err := h.aggregationService.Consolidate(clientID, currency, mode)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to consolidate portfolio", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, breakdown)
}
