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

// HoldingHandler handles HTTP requests for recurring plan and insurance
// policy endpoints. Both are pass-through holdings: their market value is
// maintained manually and only currency-converted at aggregation time.
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// Plans handles GET requests to retrieve all of a client's recurring plans.
//
// Endpoint: GET /api/client/{uuid}/recurring
// Response: 200 OK with array of RecurringPlan
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) Plans(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	plans, err := h.holdingService.GetPlans(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, plans)
}

// CreatePlan handles POST requests to create a recurring plan.
//
// Endpoint: POST /api/client/{uuid}/recurring
// Request Body: RecurringPlanRequest
// Response: 201 Created with RecurringPlan
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *HoldingHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.RecurringPlanRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRecurringPlan(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	plan, err := h.holdingService.CreatePlan(model.RecurringPlan{
		ClientID:      clientID,
		Currency:      model.Currency(req.Currency),
		Name:          req.Name,
		MonthlyAmount: req.MonthlyAmount,
		MarketValue:   req.MarketValue,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, plan)
}

// UpdatePlan handles PUT requests to overwrite a recurring plan.
//
// Endpoint: PUT /api/recurring/{uuid}
// Request Body: RecurringPlanRequest
// Response: 200 OK with RecurringPlan
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the plan does not exist
// Error: 500 Internal Server Error if the update fails
func (h *HoldingHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.RecurringPlanRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRecurringPlan(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	plan, err := h.holdingService.UpdatePlan(model.RecurringPlan{
		ID:            planID,
		Currency:      model.Currency(req.Currency),
		Name:          req.Name,
		MonthlyAmount: req.MonthlyAmount,
		MarketValue:   req.MarketValue,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, plan)
}

// DeletePlan handles DELETE requests to remove a recurring plan.
//
// Endpoint: DELETE /api/recurring/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the plan does not exist
// Error: 500 Internal Server Error if the delete fails
func (h *HoldingHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "uuid")

	if err := h.holdingService.DeletePlan(planID); err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete plan", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Policies handles GET requests to retrieve all of a client's insurance
// policies.
//
// Endpoint: GET /api/client/{uuid}/policy
// Response: 200 OK with array of InsurancePolicy
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) Policies(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	policies, err := h.holdingService.GetPolicies(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, policies)
}

// CreatePolicy handles POST requests to create an insurance policy.
//
// Endpoint: POST /api/client/{uuid}/policy
// Request Body: InsurancePolicyRequest
// Response: 201 Created with InsurancePolicy
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *HoldingHandler) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.InsurancePolicyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateInsurancePolicy(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	policy, err := h.holdingService.CreatePolicy(model.InsurancePolicy{
		ClientID:  clientID,
		Currency:  model.Currency(req.Currency),
		Company:   req.Company,
		Product:   req.Product,
		CashValue: req.CashValue,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, policy)
}

// UpdatePolicy handles PUT requests to overwrite an insurance policy.
//
// Endpoint: PUT /api/policy/{uuid}
// Request Body: InsurancePolicyRequest
// Response: 200 OK with InsurancePolicy
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the policy does not exist
// Error: 500 Internal Server Error if the update fails
func (h *HoldingHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	policyID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.InsurancePolicyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateInsurancePolicy(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	policy, err := h.holdingService.UpdatePolicy(model.InsurancePolicy{
		ID:        policyID,
		Currency:  model.Currency(req.Currency),
		Company:   req.Company,
		Product:   req.Product,
		CashValue: req.CashValue,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, policy)
}

// DeletePolicy handles DELETE requests to remove an insurance policy.
//
// Endpoint: DELETE /api/policy/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the policy does not exist
// Error: 500 Internal Server Error if the delete fails
func (h *HoldingHandler) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	policyID := chi.URLParam(r, "uuid")

	if err := h.holdingService.DeletePolicy(policyID); err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete policy", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
