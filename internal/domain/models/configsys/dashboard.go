package configsys

// Dashboard aggregates collection counts for the overview page
type Dashboard struct {
	Folders          int        `json:"folders"`
	Configs          int        `json:"configs"`
	Prompts          int        `json:"prompts"`
	Snippets         int        `json:"snippets"`
	Workspaces       int        `json:"workspaces"`
	CurrentWorkspace Workspace  `json:"current_workspace"`
	RecentActivity   []Activity `json:"recent_activity"`
}
