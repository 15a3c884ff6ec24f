package handler

import (
	"log/slog"
	"net/http"

	svc "confighub/internal/domain/services/configsys"
	"confighub/internal/httputil"
)

// PromptHandler handles prompt HTTP requests
type PromptHandler struct {
	prompts svc.PromptStore
	logger  *slog.Logger
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(prompts svc.PromptStore, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{
		prompts: prompts,
		logger:  logger,
	}
}

type updatePromptBody struct {
	Title    *string                 `json:"title"`
	Content  *string                 `json:"content"`
	Category httputil.OptionalString `json:"category"`
	Tags     []string                `json:"tags"`
}

// ListPrompts lists prompts, optionally filtered
// GET /api/prompts?q=&category=&tag=
func (h *PromptHandler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prompts := h.prompts.SearchPrompts(svc.PromptFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
	})

	httputil.RespondJSON(w, http.StatusOK, prompts)
}

// ListTags lists every tag in use
// GET /api/prompts/tags
func (h *PromptHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.prompts.PromptTags())
}

// CreatePrompt creates a prompt
// POST /api/prompts
func (h *PromptHandler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req svc.CreatePromptRequest
	if !parseBody(w, r, &req) {
		return
	}

	prompt, err := h.prompts.AddPrompt(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, prompt)
}

// GetPrompt retrieves a prompt by ID
// GET /api/prompts/{id}
func (h *PromptHandler) GetPrompt(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.prompts.GetPrompt(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prompt)
}

// UpdatePrompt updates a prompt. A tags array replaces the whole list.
// PATCH /api/prompts/{id}
func (h *PromptHandler) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	var body updatePromptBody
	if !parseBody(w, r, &body) {
		return
	}

	prompt, err := h.prompts.UpdatePrompt(r.PathValue("id"), &svc.UpdatePromptRequest{
		Title:    body.Title,
		Content:  body.Content,
		Category: optional(body.Category),
		Tags:     body.Tags,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prompt)
}

// DeletePrompt deletes a prompt
// DELETE /api/prompts/{id}
func (h *PromptHandler) DeletePrompt(w http.ResponseWriter, r *http.Request) {
	if err := h.prompts.DeletePrompt(r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}
