package configsys

import (
	models "confighub/internal/domain/models/configsys"
)

// OptionalString tracks tri-state semantics for clearable fields (RFC 7396 PATCH).
// Transport-agnostic: handlers map httputil.OptionalString onto it.
//   - Present=false: field absent (don't change)
//   - Present=true, Value=nil: clear the field
//   - Present=true, Value!=nil: set the field
type OptionalString struct {
	Present bool
	Value   *string
}

// Set returns a present OptionalString holding v
func Set(v string) OptionalString {
	return OptionalString{Present: true, Value: &v}
}

// Clear returns a present OptionalString holding null
func Clear() OptionalString {
	return OptionalString{Present: true}
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name        string            `json:"name"`
	Icon        models.FolderIcon `json:"icon"`
	Description *string           `json:"description,omitempty"`
}

// UpdateFolderRequest merges the provided fields into a folder
type UpdateFolderRequest struct {
	Name        *string            `json:"name,omitempty"`
	Icon        *models.FolderIcon `json:"icon,omitempty"`
	Description OptionalString     `json:"-"`
}

// CreateConfigRequest represents a config file creation request
type CreateConfigRequest struct {
	FolderID string  `json:"folder_id"`
	Name     string  `json:"name"`
	Content  string  `json:"content"`
	Language *string `json:"language,omitempty"`
}

// UpdateConfigRequest merges the provided fields into a config file.
// A Content value different from the current content pushes history.
// FolderID moves the config and must reference an existing folder.
type UpdateConfigRequest struct {
	FolderID *string        `json:"folder_id,omitempty"`
	Name     *string        `json:"name,omitempty"`
	Content  *string        `json:"content,omitempty"`
	Language OptionalString `json:"-"`
}

// CreatePromptRequest represents a prompt creation request
type CreatePromptRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// UpdatePromptRequest merges the provided fields into a prompt.
// Tags replaces the whole tag list when non-nil.
type UpdatePromptRequest struct {
	Title    *string        `json:"title,omitempty"`
	Content  *string        `json:"content,omitempty"`
	Category OptionalString `json:"-"`
	Tags     []string       `json:"tags,omitempty"`
}

// CreateSnippetRequest represents a snippet creation request
type CreateSnippetRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Content     string `json:"content"`
}

// UpdateSnippetRequest merges the provided fields into a snippet
type UpdateSnippetRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Language    *string `json:"language,omitempty"`
	Content     *string `json:"content,omitempty"`
}

// CreateWorkspaceRequest represents a workspace creation request.
// Avatar is derived from Name when empty.
type CreateWorkspaceRequest struct {
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Avatar string  `json:"avatar,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// UpdateWorkspaceRequest merges the provided fields into a workspace
type UpdateWorkspaceRequest struct {
	Name   *string        `json:"name,omitempty"`
	Email  OptionalString `json:"-"`
	Avatar *string        `json:"avatar,omitempty"`
	Color  *string        `json:"color,omitempty"`
}

// UpdateUserRequest shallow-merges the provided fields into the profile
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// ConfigFilter narrows SearchConfigs. Empty fields match everything.
type ConfigFilter struct {
	Query    string
	Language string
	FolderID string
}

// PromptFilter narrows SearchPrompts. Empty fields match everything.
type PromptFilter struct {
	Query    string
	Category string
	Tag      string
}

// SnippetFilter narrows SearchSnippets. Empty fields match everything.
type SnippetFilter struct {
	Query    string
	Language string
}
