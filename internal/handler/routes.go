package handler

import (
	"log/slog"
	"net/http"

	svc "confighub/internal/domain/services/configsys"
)

// RegisterRoutes wires every store-backed endpoint onto mux
// (Go 1.22+ method and wildcard patterns)
func RegisterRoutes(mux *http.ServeMux, store svc.EntityStore, logger *slog.Logger) {
	folders := NewFolderHandler(store, store, logger)
	configs := NewConfigHandler(store, logger)
	prompts := NewPromptHandler(store, logger)
	snippets := NewSnippetHandler(store, logger)
	workspaces := NewWorkspaceHandler(store, logger)
	users := NewUserHandler(store, store, logger)
	session := NewSessionHandler(store, logger)
	activity := NewActivityHandler(store, logger)
	dashboard := NewDashboardHandler(store)

	// Health check
	mux.HandleFunc("GET /health", HealthCheck)

	// Folder routes
	mux.HandleFunc("GET /api/folders", folders.ListFolders)
	mux.HandleFunc("POST /api/folders", folders.CreateFolder)
	mux.HandleFunc("GET /api/folders/{id}", folders.GetFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folders.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folders.DeleteFolder)
	mux.HandleFunc("GET /api/folders/{id}/configs", folders.ListFolderConfigs)

	// Config routes
	mux.HandleFunc("GET /api/configs", configs.ListConfigs)
	mux.HandleFunc("POST /api/configs", configs.CreateConfig)
	mux.HandleFunc("GET /api/configs/{id}", configs.GetConfig)
	mux.HandleFunc("PATCH /api/configs/{id}", configs.UpdateConfig)
	mux.HandleFunc("DELETE /api/configs/{id}", configs.DeleteConfig)
	mux.HandleFunc("GET /api/configs/{id}/history", configs.GetHistory)

	// Prompt routes
	mux.HandleFunc("GET /api/prompts", prompts.ListPrompts)
	mux.HandleFunc("POST /api/prompts", prompts.CreatePrompt)
	mux.HandleFunc("GET /api/prompts/tags", prompts.ListTags) // more specific than {id}
	mux.HandleFunc("GET /api/prompts/{id}", prompts.GetPrompt)
	mux.HandleFunc("PATCH /api/prompts/{id}", prompts.UpdatePrompt)
	mux.HandleFunc("DELETE /api/prompts/{id}", prompts.DeletePrompt)

	// Snippet routes
	mux.HandleFunc("GET /api/snippets", snippets.ListSnippets)
	mux.HandleFunc("POST /api/snippets", snippets.CreateSnippet)
	mux.HandleFunc("GET /api/snippets/{id}", snippets.GetSnippet)
	mux.HandleFunc("PATCH /api/snippets/{id}", snippets.UpdateSnippet)
	mux.HandleFunc("DELETE /api/snippets/{id}", snippets.DeleteSnippet)

	// Workspace routes
	mux.HandleFunc("GET /api/workspaces", workspaces.ListWorkspaces)
	mux.HandleFunc("POST /api/workspaces", workspaces.CreateWorkspace)
	mux.HandleFunc("GET /api/workspaces/current", workspaces.GetCurrent)
	mux.HandleFunc("PUT /api/workspaces/current", workspaces.SetCurrent)
	mux.HandleFunc("PATCH /api/workspaces/{id}", workspaces.UpdateWorkspace)
	mux.HandleFunc("DELETE /api/workspaces/{id}", workspaces.DeleteWorkspace)

	// Profile and session routes
	mux.HandleFunc("GET /api/users/me", users.GetProfile)
	mux.HandleFunc("PATCH /api/users/me", users.UpdateProfile)
	mux.HandleFunc("POST /api/session/sync", session.Sync)

	// Activity and overview
	mux.HandleFunc("GET /api/activity", activity.ListActivity)
	mux.HandleFunc("POST /api/activity", activity.LogActivity)
	mux.HandleFunc("GET /api/dashboard", dashboard.GetDashboard)
}
