package handler

import (
	"log/slog"
	"net/http"

	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
	"confighub/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folders svc.FolderStore
	configs svc.ConfigStore
	logger  *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folders svc.FolderStore, configs svc.ConfigStore, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folders: folders,
		configs: configs,
		logger:  logger,
	}
}

// folderResponse adds the derived config count to a folder
type folderResponse struct {
	models.Folder
	ConfigCount int `json:"config_count"`
}

type updateFolderBody struct {
	Name        *string                 `json:"name"`
	Icon        *models.FolderIcon      `json:"icon"`
	Description httputil.OptionalString `json:"description"`
}

// ListFolders lists all folders with their config counts
// GET /api/folders
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	counts := h.folders.FolderConfigCounts()
	folders := h.folders.ListFolders()

	out := make([]folderResponse, len(folders))
	for i, f := range folders {
		out[i] = folderResponse{Folder: f, ConfigCount: counts[f.ID]}
	}

	httputil.RespondJSON(w, http.StatusOK, out)
}

// CreateFolder creates a new folder
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req svc.CreateFolderRequest
	if !parseBody(w, r, &req) {
		return
	}

	folder, err := h.folders.AddFolder(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folderResponse{Folder: *folder})
}

// GetFolder retrieves a folder by ID
// GET /api/folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	folder, err := h.folders.GetFolder(id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folderResponse{
		Folder:      *folder,
		ConfigCount: len(h.configs.GetConfigsByFolder(id)),
	})
}

// UpdateFolder renames, re-icons or re-describes a folder
// PATCH /api/folders/{id}
func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	var body updateFolderBody
	if !parseBody(w, r, &body) {
		return
	}

	folder, err := h.folders.UpdateFolder(r.PathValue("id"), &svc.UpdateFolderRequest{
		Name:        body.Name,
		Icon:        body.Icon,
		Description: optional(body.Description),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// DeleteFolder deletes a folder and every config inside it
// DELETE /api/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.folders.DeleteFolder(r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// ListFolderConfigs lists the configs inside a folder
// GET /api/folders/{id}/configs
func (h *FolderHandler) ListFolderConfigs(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.folders.GetFolder(id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.configs.GetConfigsByFolder(id))
}
