package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/validation"
)

// InsuranceHandler handles HTTP requests for benefit-projection calculator
// endpoints.
type InsuranceHandler struct {
	insuranceService *service.InsuranceService
}

// NewInsuranceHandler creates a new InsuranceHandler with the provided service dependency.
func NewInsuranceHandler(insuranceService *service.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{
		insuranceService: insuranceService,
	}
}

// Calculators handles GET requests to retrieve all of a client's calculators.
//
// Endpoint: GET /api/client/{uuid}/calculator
// Response: 200 OK with array of InsuranceCalculator
// Error: 500 Internal Server Error if retrieval fails
func (h *InsuranceHandler) Calculators(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	calculators, err := h.insuranceService.GetCalculators(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve calculators", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, calculators)
}

// CreateCalculator handles POST requests to create a calculator. The full
// per-policy-year row table is generated from the client's birth date and the
// policy start date.
//
// Endpoint: POST /api/client/{uuid}/calculator
// Request Body: CreateCalculatorRequest
// Response: 201 Created with InsuranceCalculator
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the client does not exist
// Error: 500 Internal Server Error if creation fails
func (h *InsuranceHandler) CreateCalculator(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CreateCalculatorRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateCalculator(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	startDate, _ := time.Parse(validation.DateLayout, req.StartDate)

	calc, err := h.insuranceService.CreateCalculator(
		clientID, req.Company, req.Product, model.Currency(req.Currency), startDate, req.Benefits,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create calculator", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, calc)
}

// GetCalculator handles GET requests to retrieve one calculator.
//
// Endpoint: GET /api/calculator/{uuid}
// Response: 200 OK with InsuranceCalculator
// Error: 404 Not Found if the calculator does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *InsuranceHandler) GetCalculator(w http.ResponseWriter, r *http.Request) {
	calculatorID := chi.URLParam(r, "uuid")

	calc, err := h.insuranceService.GetCalculator(calculatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCalculatorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCalculatorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve calculator", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, calc)
}

// UpdateCalculator handles PUT requests to overwrite a calculator. The row
// table is regenerated in full; a start-date change recomputes every row's
// insurance age.
//
// Endpoint: PUT /api/calculator/{uuid}
// Request Body: UpdateCalculatorRequest
// Response: 200 OK with InsuranceCalculator
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the calculator does not exist
// Error: 500 Internal Server Error if the update fails
func (h *InsuranceHandler) UpdateCalculator(w http.ResponseWriter, r *http.Request) {
	calculatorID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateCalculatorRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateCalculator(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	startDate, _ := time.Parse(validation.DateLayout, req.StartDate)

	calc, err := h.insuranceService.UpdateCalculator(
		calculatorID, req.Company, req.Product, model.Currency(req.Currency), startDate, req.Benefits,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrCalculatorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCalculatorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update calculator", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, calc)
}

// Rows handles GET requests to retrieve a calculator's full row table,
// ordered by policy year.
//
// Endpoint: GET /api/calculator/{uuid}/rows
// Response: 200 OK with array of InsuranceCalculatorRow
// Error: 500 Internal Server Error if retrieval fails
func (h *InsuranceHandler) Rows(w http.ResponseWriter, r *http.Request) {
	calculatorID := chi.URLParam(r, "uuid")

	rows, err := h.insuranceService.GetRows(calculatorID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve calculator rows", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rows)
}

// DeleteCalculator handles DELETE requests to remove a calculator and its
// row table.
//
// Endpoint: DELETE /api/calculator/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the calculator does not exist
// Error: 500 Internal Server Error if the delete fails
func (h *InsuranceHandler) DeleteCalculator(w http.ResponseWriter, r *http.Request) {
	calculatorID := chi.URLParam(r, "uuid")

	if err := h.insuranceService.DeleteCalculator(calculatorID); err != nil {
		if errors.Is(err, apperrors.ErrCalculatorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCalculatorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete calculator", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
