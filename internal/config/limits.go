package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	MaxFolderNameLength = 255

	// MaxConfigNameLength is the maximum length for config file names.
	// Same as folder names for consistency.
	MaxConfigNameLength = 255

	// MaxTitleLength is the maximum length for prompt and snippet titles.
	MaxTitleLength = 255

	// MaxWorkspaceNameLength is the maximum length for workspace names.
	// Workspace names show up in the switcher, so they are kept short.
	MaxWorkspaceNameLength = 100

	// MaxTagLength is the maximum length of a single prompt tag.
	MaxTagLength = 50

	// MaxContentLength caps config, prompt and snippet bodies (1 MiB).
	MaxContentLength = 1 << 20

	// MaxActivityDescriptionLength is the maximum length for activity descriptions.
	MaxActivityDescriptionLength = 500
)
