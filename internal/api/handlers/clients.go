package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/validation"
)

// ClientHandler handles HTTP requests for client registry endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the clientService.
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new ClientHandler with the provided service dependency.
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// Clients handles GET requests to retrieve all registered clients.
//
// Endpoint: GET /api/client
// Response: 200 OK with array of Client
// Error: 500 Internal Server Error if retrieval fails
func (h *ClientHandler) Clients(w http.ResponseWriter, _ *http.Request) {
	clients, err := h.clientService.GetClients()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveClients.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, clients)
}

// GetClient handles GET requests to retrieve a single client by ID.
//
// Endpoint: GET /api/client/{uuid}
// Response: 200 OK with Client
// Error: 404 Not Found if client not found
// Error: 500 Internal Server Error if retrieval fails
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	client, err := h.clientService.GetClient(clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveClients.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, client)
}

// CreateClient handles POST requests to register a new client.
//
// Endpoint: POST /api/client
// Request Body: CreateClientRequest (name, birthDate)
// Response: 201 Created with Client
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateClientRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateClient(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	birthDate, _ := time.Parse(validation.DateLayout, req.BirthDate)

	client, err := h.clientService.CreateClient(req.Name, birthDate)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create client", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, client)
}
