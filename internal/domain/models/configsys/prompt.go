package configsys

import (
	"time"
)

// Prompt is a titled, tagged prompt template
type Prompt struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  *string   `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the prompt
func (p Prompt) Clone() Prompt {
	out := p
	out.Tags = append([]string{}, p.Tags...)
	if p.Category != nil {
		category := *p.Category
		out.Category = &category
	}
	return out
}
