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

// NoteHandler handles HTTP requests for structured note endpoints.
type NoteHandler struct {
	noteService *service.NoteService
}

// NewNoteHandler creates a new NoteHandler with the provided service dependency.
func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

func noteFromRequest(req request.StructuredNoteRequest) model.StructuredNote {
	note := model.StructuredNote{
		Currency:          model.Currency(req.Currency),
		ProductName:       req.ProductName,
		TransactionAmount: req.TransactionAmount,
		InterestRatePct:   req.InterestRatePct,
		KOPct:             req.KOPct,
		KIPct:             req.KIPct,
		PutPct:            req.PutPct,
		IsExited:          req.IsExited,
	}
	for i, leg := range req.Legs {
		if i >= model.MaxNoteLegs {
			break
		}
		note.Legs[i] = model.NoteLeg{
			Symbol:       leg.Symbol,
			InitialPrice: leg.InitialPrice,
			LivePrice:    leg.LivePrice,
		}
	}
	return note
}

// Notes handles GET requests to retrieve all of a client's structured notes,
// exited ones included.
//
// Endpoint: GET /api/client/{uuid}/note
// Response: 200 OK with array of StructuredNote
// Error: 500 Internal Server Error if retrieval fails
func (h *NoteHandler) Notes(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	notes, err := h.noteService.GetNotes(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, notes)
}

// CreateNote handles POST requests to create a structured note. Per-leg
// strike, protection and distance figures are derived before storage.
//
// Endpoint: POST /api/client/{uuid}/note
// Request Body: StructuredNoteRequest
// Response: 201 Created with StructuredNote
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.StructuredNoteRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateStructuredNote(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	note := noteFromRequest(req)
	note.ClientID = clientID

	created, err := h.noteService.CreateNote(note)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, created)
}

// GetNote handles GET requests to retrieve a single structured note.
//
// Endpoint: GET /api/note/{uuid}
// Response: 200 OK with StructuredNote
// Error: 404 Not Found if the note does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "uuid")

	note, err := h.noteService.GetNote(noteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, note)
}

// UpdateNote handles PUT requests to overwrite a structured note.
//
// Endpoint: PUT /api/note/{uuid}
// Request Body: StructuredNoteRequest
// Response: 200 OK with StructuredNote
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the note does not exist
// Error: 500 Internal Server Error if the update fails
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.StructuredNoteRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateStructuredNote(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	existing, err := h.noteService.GetNote(noteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	note := noteFromRequest(req)
	note.ID = existing.ID
	note.ClientID = existing.ClientID

	updated, err := h.noteService.UpdateNote(note)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, updated)
}

// DeleteNote handles DELETE requests to remove a structured note.
//
// Endpoint: DELETE /api/note/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the note does not exist
// Error: 500 Internal Server Error if the delete fails
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "uuid")

	if err := h.noteService.DeleteNote(noteID); err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete note", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
