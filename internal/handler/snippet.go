package handler

import (
	"log/slog"
	"net/http"

	svc "confighub/internal/domain/services/configsys"
	"confighub/internal/httputil"
)

// SnippetHandler handles snippet HTTP requests
type SnippetHandler struct {
	snippets svc.SnippetStore
	logger   *slog.Logger
}

// NewSnippetHandler creates a new snippet handler
func NewSnippetHandler(snippets svc.SnippetStore, logger *slog.Logger) *SnippetHandler {
	return &SnippetHandler{
		snippets: snippets,
		logger:   logger,
	}
}

// ListSnippets lists snippets, optionally filtered
// GET /api/snippets?q=&language=
func (h *SnippetHandler) ListSnippets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	snippets := h.snippets.SearchSnippets(svc.SnippetFilter{
		Query:    q.Get("q"),
		Language: q.Get("language"),
	})

	httputil.RespondJSON(w, http.StatusOK, snippets)
}

// CreateSnippet creates a snippet
// POST /api/snippets
func (h *SnippetHandler) CreateSnippet(w http.ResponseWriter, r *http.Request) {
	var req svc.CreateSnippetRequest
	if !parseBody(w, r, &req) {
		return
	}

	snippet, err := h.snippets.AddSnippet(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, snippet)
}

// GetSnippet retrieves a snippet by ID
// GET /api/snippets/{id}
func (h *SnippetHandler) GetSnippet(w http.ResponseWriter, r *http.Request) {
	snippet, err := h.snippets.GetSnippet(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, snippet)
}

// UpdateSnippet updates a snippet
// PATCH /api/snippets/{id}
func (h *SnippetHandler) UpdateSnippet(w http.ResponseWriter, r *http.Request) {
	var req svc.UpdateSnippetRequest
	if !parseBody(w, r, &req) {
		return
	}

	snippet, err := h.snippets.UpdateSnippet(r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, snippet)
}

// DeleteSnippet deletes a snippet
// DELETE /api/snippets/{id}
func (h *SnippetHandler) DeleteSnippet(w http.ResponseWriter, r *http.Request) {
	if err := h.snippets.DeleteSnippet(r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}
