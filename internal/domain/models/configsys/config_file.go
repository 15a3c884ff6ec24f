package configsys

import (
	"time"
)

// ConfigVersion is a prior content snapshot of a config file
type ConfigVersion struct {
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConfigFile is a named text artifact inside a folder.
// History is ordered most-recent-first: History[0] is the content the
// config held right before its latest content change.
type ConfigFile struct {
	ID        string          `json:"id"`
	FolderID  string          `json:"folder_id"`
	Name      string          `json:"name"`
	Content   string          `json:"content"`
	Language  *string         `json:"language,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	History   []ConfigVersion `json:"history"`
}

// Clone returns a deep copy so callers can't alias the store's history slice
func (c ConfigFile) Clone() ConfigFile {
	out := c
	out.History = make([]ConfigVersion, len(c.History))
	copy(out.History, c.History)
	if c.Language != nil {
		lang := *c.Language
		out.Language = &lang
	}
	return out
}
