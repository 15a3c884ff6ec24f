package handler

import (
	"log/slog"
	"net/http"

	svc "confighub/internal/domain/services/configsys"
	"confighub/internal/httputil"
)

// ConfigHandler handles config file HTTP requests
type ConfigHandler struct {
	configs svc.ConfigStore
	logger  *slog.Logger
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(configs svc.ConfigStore, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{
		configs: configs,
		logger:  logger,
	}
}

type updateConfigBody struct {
	FolderID *string                 `json:"folder_id"`
	Name     *string                 `json:"name"`
	Content  *string                 `json:"content"`
	Language httputil.OptionalString `json:"language"`
}

// ListConfigs lists configs, optionally filtered
// GET /api/configs?q=&language=&folder_id=
func (h *ConfigHandler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	configs := h.configs.SearchConfigs(svc.ConfigFilter{
		Query:    q.Get("q"),
		Language: q.Get("language"),
		FolderID: q.Get("folder_id"),
	})

	httputil.RespondJSON(w, http.StatusOK, configs)
}

// CreateConfig creates a config file inside an existing folder
// POST /api/configs
func (h *ConfigHandler) CreateConfig(w http.ResponseWriter, r *http.Request) {
	var req svc.CreateConfigRequest
	if !parseBody(w, r, &req) {
		return
	}

	cfg, err := h.configs.AddConfig(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, cfg)
}

// GetConfig retrieves a config by ID, history included
// GET /api/configs/{id}
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configs.GetConfig(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, cfg)
}

// UpdateConfig edits, renames or moves a config. A content change is
// recorded in the config's history.
// PATCH /api/configs/{id}
func (h *ConfigHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var body updateConfigBody
	if !parseBody(w, r, &body) {
		return
	}

	cfg, err := h.configs.UpdateConfig(r.PathValue("id"), &svc.UpdateConfigRequest{
		FolderID: body.FolderID,
		Name:     body.Name,
		Content:  body.Content,
		Language: optional(body.Language),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, cfg)
}

// DeleteConfig deletes a config
// DELETE /api/configs/{id}
func (h *ConfigHandler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	if err := h.configs.DeleteConfig(r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// GetHistory returns the prior versions of a config, most recent first
// GET /api/configs/{id}/history
func (h *ConfigHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.configs.ConfigHistory(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, history)
}
