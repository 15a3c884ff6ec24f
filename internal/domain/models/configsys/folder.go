package configsys

import (
	"time"
)

// FolderIcon identifies the icon a folder is rendered with
type FolderIcon string

const (
	IconFolder   FolderIcon = "folder"
	IconCode     FolderIcon = "code"
	IconDatabase FolderIcon = "database"
	IconServer   FolderIcon = "server"
	IconSettings FolderIcon = "settings"
	IconCloud    FolderIcon = "cloud"
	IconLock     FolderIcon = "lock"
	IconGlobe    FolderIcon = "globe"
	IconTerminal FolderIcon = "terminal"
	IconFile     FolderIcon = "file"
)

// FolderIcons is the closed set of accepted folder icons
var FolderIcons = []FolderIcon{
	IconFolder, IconCode, IconDatabase, IconServer, IconSettings,
	IconCloud, IconLock, IconGlobe, IconTerminal, IconFile,
}

// Folder groups config files. Configs point at it through FolderID.
type Folder struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        FolderIcon `json:"icon"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Clone returns a deep copy of the folder
func (f Folder) Clone() Folder {
	out := f
	if f.Description != nil {
		description := *f.Description
		out.Description = &description
	}
	return out
}
