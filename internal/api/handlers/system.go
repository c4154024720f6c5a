package handlers

import (
	"errors"
	"net/http"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// VersionResponse represents the version check response
type VersionResponse struct {
	AppVersion string `json:"app_version"`
}

// Version handles GET requests to retrieve the application version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionResponse
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, VersionResponse{
		AppVersion: h.systemService.CheckVersion(),
	})
}

// SetQuoteAPIKey handles POST requests to store the quote feed API key.
// The key is encrypted at rest.
//
// Endpoint: POST /api/system/quote-key
// Response: 204 No Content
// Error: 400 Bad Request if the request body is invalid
// Error: 500 Internal Server Error if storage fails
func (h *SystemHandler) SetQuoteAPIKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetQuoteAPIKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.systemService.SetQuoteAPIKey(req.APIKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to save quote API key", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// QuoteAPIKeyStatus handles GET requests to check whether a quote feed API
// key has been configured. The key itself is never returned.
//
// Endpoint: GET /api/system/quote-key
// Response: 200 OK with {"configured": bool}
func (h *SystemHandler) QuoteAPIKeyStatus(w http.ResponseWriter, _ *http.Request) {
	_, err := h.systemService.QuoteAPIKey()
	if err != nil && !errors.Is(err, apperrors.ErrSettingNotFound) {
		response.RespondError(w, http.StatusInternalServerError, "failed to read quote API key", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"configured": err == nil})
}
