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

// GroupHandler handles HTTP requests for display-group endpoints.
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler creates a new GroupHandler with the provided service dependency.
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// Groups handles GET requests to retrieve all of a client's display groups.
//
// Endpoint: GET /api/client/{uuid}/group
// Response: 200 OK with array of PositionGroup
// Error: 500 Internal Server Error if retrieval fails
func (h *GroupHandler) Groups(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	groups, err := h.groupService.GetGroups(clientID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve groups", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, groups)
}

// CreateGroup handles POST requests to create a display group.
//
// Endpoint: POST /api/client/{uuid}/group
// Request Body: CreateGroupRequest (name)
// Response: 201 Created with PositionGroup
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the client does not exist
// Error: 500 Internal Server Error if creation fails
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CreateGroupRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateGroup(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	group, err := h.groupService.CreateGroup(clientID, req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create group", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, group)
}

// DeleteGroup handles DELETE requests to remove a group. Member positions
// themselves are untouched.
//
// Endpoint: DELETE /api/group/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the group does not exist
// Error: 500 Internal Server Error if the delete fails
func (h *GroupHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "uuid")

	if err := h.groupService.DeleteGroup(groupID); err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGroupNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete group", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Members handles GET requests to retrieve a group's memberships.
//
// Endpoint: GET /api/group/{uuid}/member
// Response: 200 OK with array of GroupMember
// Error: 500 Internal Server Error if retrieval fails
func (h *GroupHandler) Members(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "uuid")

	members, err := h.groupService.GetMembers(groupID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve group members", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, members)
}

// AddMember handles POST requests to link a position into a group.
//
// Endpoint: POST /api/group/{uuid}/member
// Request Body: GroupMemberRequest (assetClass, positionId)
// Response: 201 Created with GroupMember
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the position is already a member
// Error: 500 Internal Server Error if the link fails
func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.GroupMemberRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateGroupMember(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	member, err := h.groupService.AddMember(groupID, model.AssetClass(req.AssetClass), req.PositionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateEntry.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to add group member", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, member)
}

// RemoveMember handles DELETE requests to unlink a position from a group.
//
// Endpoint: DELETE /api/group/{uuid}/member
// Request Body: GroupMemberRequest (assetClass, positionId)
// Response: 204 No Content
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the unlink fails
func (h *GroupHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.GroupMemberRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateGroupMember(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.groupService.RemoveMember(groupID, model.AssetClass(req.AssetClass), req.PositionID); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to remove group member", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
