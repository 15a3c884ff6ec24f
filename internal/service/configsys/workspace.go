package configsys

import (
	"fmt"
	"strings"

	"confighub/internal/domain"
	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
)

// defaultWorkspaceColor is used when a workspace is created without a color
const defaultWorkspaceColor = "bg-blue-500"

// AddWorkspace creates a workspace. It does not become current.
func (s *Store) AddWorkspace(req *svc.CreateWorkspaceRequest) (*models.Workspace, error) {
	if err := validateCreateWorkspace(req); err != nil {
		return nil, s.reject("workspace", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.addWorkspaceLocked("", req)
	s.recordMutation("workspace", "create")

	s.logger.Info("workspace created", "id", ws.ID, "name", ws.Name)

	out := ws.Clone()
	return &out, nil
}

// addWorkspaceLocked appends a workspace, generating an id when id is empty
func (s *Store) addWorkspaceLocked(id string, req *svc.CreateWorkspaceRequest) models.Workspace {
	if id == "" {
		id = s.ids.New()
	}
	name := strings.TrimSpace(req.Name)
	avatar := req.Avatar
	if avatar == "" {
		avatar = deriveInitials(name)
	}
	color := req.Color
	if color == "" {
		color = defaultWorkspaceColor
	}
	ws := models.Workspace{
		ID:     id,
		Name:   name,
		Email:  cloneString(req.Email),
		Avatar: avatar,
		Color:  color,
	}
	s.workspaces = append(s.workspaces, ws)
	return ws
}

// UpdateWorkspace merges the provided fields into the workspace. Renaming
// without an explicit avatar re-derives the initials.
func (s *Store) UpdateWorkspace(id string, req *svc.UpdateWorkspaceRequest) (*models.Workspace, error) {
	if err := validateUpdateWorkspace(req); err != nil {
		return nil, s.reject("workspace", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.workspaceIndexLocked(id)
	if idx < 0 {
		return nil, s.reject("workspace", domain.NewNotFound("workspace", id))
	}
	ws := &s.workspaces[idx]

	if req.Name != nil {
		ws.Name = strings.TrimSpace(*req.Name)
		if req.Avatar == nil {
			ws.Avatar = deriveInitials(ws.Name)
		}
	}
	if req.Avatar != nil {
		ws.Avatar = *req.Avatar
	}
	if req.Color != nil {
		ws.Color = *req.Color
	}
	if req.Email.Present {
		ws.Email = cloneString(req.Email.Value)
	}
	s.recordMutation("workspace", "update")

	s.logger.Info("workspace updated", "id", ws.ID, "name", ws.Name)

	out := ws.Clone()
	return &out, nil
}

// SetCurrentWorkspace points the current workspace at id. Unknown ids are
// rejected, so the pointer can never dangle.
func (s *Store) SetCurrentWorkspace(id string) (*models.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.workspaceIndexLocked(id)
	if idx < 0 {
		return nil, s.reject("workspace", domain.NewNotFound("workspace", id))
	}
	ws := s.workspaces[idx]

	if s.currentID != id {
		previous := s.currentID
		s.currentID = id
		s.logActivityLocked(models.ActivitySwitchWorkspace, fmt.Sprintf("Switched to workspace %q", ws.Name))
		s.recordMutation("workspace", "switch")
		s.logger.Info("current workspace changed", "from", previous, "to", id)
	}

	out := ws.Clone()
	return &out, nil
}

// DeleteWorkspace removes a workspace. Removing the current workspace moves
// the pointer to the first remaining one. Removing the last workspace is
// rejected with an InvariantViolationError.
func (s *Store) DeleteWorkspace(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.workspaceIndexLocked(id)
	if idx < 0 {
		return s.reject("workspace", domain.NewNotFound("workspace", id))
	}
	if len(s.workspaces) == 1 {
		return s.reject("workspace", &domain.InvariantViolationError{
			Message: fmt.Sprintf("cannot delete workspace %s: it is the only workspace", id),
		})
	}

	name := s.workspaces[idx].Name
	s.workspaces = append(s.workspaces[:idx], s.workspaces[idx+1:]...)
	if s.currentID == id {
		s.currentID = s.workspaces[0].ID
		s.logger.Debug("current workspace deleted, failing over", "deleted", id, "current", s.currentID)
	}
	s.recordMutation("workspace", "delete")

	s.logger.Info("workspace deleted", "id", id, "name", name, "current_workspace", s.currentID)
	return nil
}

// CurrentWorkspace returns the current workspace
func (s *Store) CurrentWorkspace() models.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentWorkspaceLocked()
}

func (s *Store) currentWorkspaceLocked() models.Workspace {
	// currentID always resolves; seed and delete rules guarantee it
	return s.workspaces[s.workspaceIndexLocked(s.currentID)].Clone()
}

// ListWorkspaces returns every workspace in collection order
func (s *Store) ListWorkspaces() []models.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Workspace, len(s.workspaces))
	for i, ws := range s.workspaces {
		out[i] = ws.Clone()
	}
	return out
}

func (s *Store) workspaceIndexLocked(id string) int {
	for i := range s.workspaces {
		if s.workspaces[i].ID == id {
			return i
		}
	}
	return -1
}
