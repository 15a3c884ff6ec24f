package configsys

import (
	"time"
)

// ActivityType tags what kind of mutation an activity describes
type ActivityType string

const (
	ActivityCreateConfig    ActivityType = "create_config"
	ActivityUpdateConfig    ActivityType = "update_config"
	ActivityDeleteConfig    ActivityType = "delete_config"
	ActivityCreateFolder    ActivityType = "create_folder"
	ActivityDeleteFolder    ActivityType = "delete_folder"
	ActivityCreatePrompt    ActivityType = "create_prompt"
	ActivityCreateSnippet   ActivityType = "create_snippet"
	ActivityUpdateProfile   ActivityType = "update_profile"
	ActivitySwitchWorkspace ActivityType = "switch_workspace"
)

// ActivityTypes is the closed set of accepted activity types
var ActivityTypes = []ActivityType{
	ActivityCreateConfig, ActivityUpdateConfig, ActivityDeleteConfig,
	ActivityCreateFolder, ActivityDeleteFolder,
	ActivityCreatePrompt, ActivityCreateSnippet,
	ActivityUpdateProfile, ActivitySwitchWorkspace,
}

// Activity is an append-only audit entry. The log is kept newest-first.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
}
