package handler

import (
	"log/slog"
	"net/http"

	svc "confighub/internal/domain/services/configsys"
	"confighub/internal/httputil"
)

// WorkspaceHandler handles workspace HTTP requests
type WorkspaceHandler struct {
	workspaces svc.WorkspaceStore
	logger     *slog.Logger
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaces svc.WorkspaceStore, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaces: workspaces,
		logger:     logger,
	}
}

type updateWorkspaceBody struct {
	Name   *string                 `json:"name"`
	Email  httputil.OptionalString `json:"email"`
	Avatar *string                 `json:"avatar"`
	Color  *string                 `json:"color"`
}

type setCurrentBody struct {
	ID string `json:"id"`
}

// ListWorkspaces lists all workspaces
// GET /api/workspaces
func (h *WorkspaceHandler) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.workspaces.ListWorkspaces())
}

// CreateWorkspace creates a workspace. It does not become current.
// POST /api/workspaces
func (h *WorkspaceHandler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var req svc.CreateWorkspaceRequest
	if !parseBody(w, r, &req) {
		return
	}

	ws, err := h.workspaces.AddWorkspace(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, ws)
}

// GetCurrent returns the current workspace
// GET /api/workspaces/current
func (h *WorkspaceHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.workspaces.CurrentWorkspace())
}

// SetCurrent switches the current workspace
// PUT /api/workspaces/current
func (h *WorkspaceHandler) SetCurrent(w http.ResponseWriter, r *http.Request) {
	var body setCurrentBody
	if !parseBody(w, r, &body) {
		return
	}
	if body.ID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "id is required")
		return
	}

	ws, err := h.workspaces.SetCurrentWorkspace(body.ID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, ws)
}

// UpdateWorkspace renames or recolors a workspace
// PATCH /api/workspaces/{id}
func (h *WorkspaceHandler) UpdateWorkspace(w http.ResponseWriter, r *http.Request) {
	var body updateWorkspaceBody
	if !parseBody(w, r, &body) {
		return
	}

	ws, err := h.workspaces.UpdateWorkspace(r.PathValue("id"), &svc.UpdateWorkspaceRequest{
		Name:   body.Name,
		Email:  optional(body.Email),
		Avatar: body.Avatar,
		Color:  body.Color,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, ws)
}

// DeleteWorkspace deletes a workspace. Deleting the last one is a 409.
// DELETE /api/workspaces/{id}
func (h *WorkspaceHandler) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	if err := h.workspaces.DeleteWorkspace(r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}
