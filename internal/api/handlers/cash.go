package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/validation"
)

// CashHandler handles HTTP requests for cash balance endpoints.
type CashHandler struct {
	cashService *service.CashService
}

// NewCashHandler creates a new CashHandler with the provided service dependency.
func NewCashHandler(cashService *service.CashService) *CashHandler {
	return &CashHandler{
		cashService: cashService,
	}
}

// Balances handles GET requests to retrieve all of a client's cash balances.
//
// Endpoint: GET /api/client/{uuid}/cash
// Response: 200 OK with array of CashBalance
// Error: 500 Internal Server Error if retrieval fails
func (h *CashHandler) Balances(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	balances, err := h.cashService.GetBalances(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, balances)
}

// SetBalance handles PUT requests to write one currency's cash balance.
// An existing balance for the same currency is overwritten.
//
// Endpoint: PUT /api/client/{uuid}/cash
// Request Body: SetCashBalanceRequest (currency, amount)
// Response: 200 OK with CashBalance
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the write fails
func (h *CashHandler) SetBalance(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.SetCashBalanceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSetCashBalance(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	balance, err := h.cashService.SetBalance(clientID, model.Currency(req.Currency), req.Amount)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, balance)
}

// DeleteBalance handles DELETE requests to remove one currency's balance.
//
// Endpoint: DELETE /api/client/{uuid}/cash/{currency}
// Response: 204 No Content
// Error: 400 Bad Request if the currency is unsupported
// Error: 500 Internal Server Error if the delete fails
func (h *CashHandler) DeleteBalance(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")
	currency := model.Currency(chi.URLParam(r, "currency"))

	if !model.ValidCurrency(currency) {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCurrency.Error(), string(currency))
		return
	}

	if err := h.cashService.DeleteBalance(clientID, currency); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to delete cash balance", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
