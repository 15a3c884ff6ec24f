package configsys

// Workspace is a named context (akin to an account). Exactly one is current.
type Workspace struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Avatar string  `json:"avatar"` // initials, e.g. "AC"
	Color  string  `json:"color"`   // color token, e.g. "bg-blue-500"
}

// Clone returns a deep copy of the workspace
func (w Workspace) Clone() Workspace {
	out := w
	if w.Email != nil {
		email := *w.Email
		out.Email = &email
	}
	return out
}
