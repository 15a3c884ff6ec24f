package configsys

import (
	models "confighub/internal/domain/models/configsys"
)

// FolderStore manages folders. Deleting a folder deletes its configs.
type FolderStore interface {
	AddFolder(req *CreateFolderRequest) (*models.Folder, error)
	UpdateFolder(id string, req *UpdateFolderRequest) (*models.Folder, error)
	DeleteFolder(id string) error
	GetFolder(id string) (*models.Folder, error)
	ListFolders() []models.Folder
	// FolderConfigCounts returns folder id -> number of configs in it
	FolderConfigCounts() map[string]int
}

// ConfigStore manages config files and their version history
type ConfigStore interface {
	AddConfig(req *CreateConfigRequest) (*models.ConfigFile, error)
	UpdateConfig(id string, req *UpdateConfigRequest) (*models.ConfigFile, error)
	DeleteConfig(id string) error
	GetConfig(id string) (*models.ConfigFile, error)
	ListConfigs() []models.ConfigFile
	// GetConfigsByFolder filters the current config collection, in insertion order
	GetConfigsByFolder(folderID string) []models.ConfigFile
	// ConfigHistory returns prior versions, most recent first
	ConfigHistory(id string) ([]models.ConfigVersion, error)
	SearchConfigs(filter ConfigFilter) []models.ConfigFile
}

// PromptStore manages prompts
type PromptStore interface {
	AddPrompt(req *CreatePromptRequest) (*models.Prompt, error)
	UpdatePrompt(id string, req *UpdatePromptRequest) (*models.Prompt, error)
	DeletePrompt(id string) error
	GetPrompt(id string) (*models.Prompt, error)
	ListPrompts() []models.Prompt
	SearchPrompts(filter PromptFilter) []models.Prompt
	// PromptTags returns every tag in use, deduplicated and sorted
	PromptTags() []string
}

// SnippetStore manages snippets
type SnippetStore interface {
	AddSnippet(req *CreateSnippetRequest) (*models.Snippet, error)
	UpdateSnippet(id string, req *UpdateSnippetRequest) (*models.Snippet, error)
	DeleteSnippet(id string) error
	GetSnippet(id string) (*models.Snippet, error)
	ListSnippets() []models.Snippet
	SearchSnippets(filter SnippetFilter) []models.Snippet
}

// WorkspaceStore manages workspaces and the current-workspace pointer.
// The pointer always references a workspace in the collection.
type WorkspaceStore interface {
	AddWorkspace(req *CreateWorkspaceRequest) (*models.Workspace, error)
	UpdateWorkspace(id string, req *UpdateWorkspaceRequest) (*models.Workspace, error)
	// SetCurrentWorkspace fails with ErrNotFound if id is not in the collection
	SetCurrentWorkspace(id string) (*models.Workspace, error)
	// DeleteWorkspace fails over to the first remaining workspace when the
	// current one is removed, and refuses to remove the last workspace
	DeleteWorkspace(id string) error
	CurrentWorkspace() models.Workspace
	ListWorkspaces() []models.Workspace
}

// UserStore manages the singleton profile
type UserStore interface {
	User() models.User
	UpdateUser(req *UpdateUserRequest) (*models.User, error)
}

// ActivityStore manages the newest-first activity log
type ActivityStore interface {
	LogActivity(activityType models.ActivityType, description string) (*models.Activity, error)
	// RecentActivity returns up to limit entries, newest first. limit <= 0 returns all.
	RecentActivity(limit int) []models.Activity
}

// EntityStore is the full in-memory store
type EntityStore interface {
	FolderStore
	ConfigStore
	PromptStore
	SnippetStore
	WorkspaceStore
	UserStore
	ActivityStore
	Dashboard() models.Dashboard
}
