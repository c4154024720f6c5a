package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
)

// BenefitHandler handles HTTP requests for benefit projection endpoints.
type BenefitHandler struct {
	benefitService *service.BenefitService
}

// NewBenefitHandler creates a new BenefitHandler with the provided service dependency.
func NewBenefitHandler(benefitService *service.BenefitService) *BenefitHandler {
	return &BenefitHandler{
		benefitService: benefitService,
	}
}

// BenefitTableResponse represents the full age-indexed benefit projection in
// a display currency. Values[i] is the total benefit at insurance age i.
type BenefitTableResponse struct {
	Currency model.Currency    `json:"currency"`
	Values   []decimal.Decimal `json:"values"`
}

// Table handles GET requests to retrieve the full benefit projection table
// for a client. The optional currency query parameter selects the display
// currency; it defaults to the hub.
//
// Endpoint: GET /api/client/{uuid}/benefits?currency=TWD
// Response: 200 OK with BenefitTableResponse
// Error: 400 Bad Request if the display currency is unsupported
// Error: 500 Internal Server Error if the table cannot be built
func (h *BenefitHandler) Table(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	currency, ok := model.DisplayCurrency(model.Currency(r.URL.Query().Get("currency")))
	if !ok {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDisplayCurrency.Error(), r.URL.Query().Get("currency"))
		return
	}

	values, err := h.benefitService.Table(clientID, currency)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to build benefit projection", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, BenefitTableResponse{
		Currency: currency,
		Values:   values,
	})
}

// BenefitLookupResponse represents one age's projected benefit.
type BenefitLookupResponse struct {
	Currency model.Currency  `json:"currency"`
	Age      int             `json:"age"`
	Benefit  decimal.Decimal `json:"benefit"`
}

// Lookup handles GET requests to retrieve the projected benefit at one
// insurance age.
//
// Endpoint: GET /api/client/{uuid}/benefits/{age}?currency=TWD
// Response: 200 OK with BenefitLookupResponse
// Error: 400 Bad Request if the age or display currency is invalid
// Error: 500 Internal Server Error if the lookup fails
func (h *BenefitHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	age, err := strconv.Atoi(chi.URLParam(r, "age"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidAge.Error(), chi.URLParam(r, "age"))
		return
	}

	currency, ok := model.DisplayCurrency(model.Currency(r.URL.Query().Get("currency")))
	if !ok {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDisplayCurrency.Error(), r.URL.Query().Get("currency"))
		return
	}

	benefit, err := h.benefitService.Lookup(clientID, currency, age)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAge) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidAge.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to look up benefit", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, BenefitLookupResponse{
		Currency: currency,
		Age:      age,
		Benefit:  benefit,
	})
}
