package configsys

import (
	"strings"

	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
)

// User returns the current profile
func (s *Store) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

// UpdateUser shallow-merges the provided fields into the profile. A new name
// without an explicit avatar re-derives the initials. It does not log an
// activity; callers that want one use LogActivity(update_profile). Emails are
// stored as given, so padded addresses fail validation.
func (s *Store) UpdateUser(req *svc.UpdateUserRequest) (*models.User, error) {
	if err := validateUpdateUser(req); err != nil {
		return nil, s.reject("user", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Name != nil {
		s.user.Name = strings.TrimSpace(*req.Name)
		if req.Avatar == nil {
			s.user.Avatar = deriveInitials(s.user.Name)
		}
	}
	if req.Email != nil {
		s.user.Email = *req.Email
	}
	if req.Avatar != nil {
		s.user.Avatar = *req.Avatar
	}
	s.recordMutation("user", "update")

	s.logger.Info("user profile updated",
		"has_name", req.Name != nil,
		"has_email", req.Email != nil,
		"has_avatar", req.Avatar != nil,
	)

	out := s.user
	return &out, nil
}
