package configsys

import (
	models "confighub/internal/domain/models/configsys"
)

// LogActivity records an activity at the head of the log
func (s *Store) LogActivity(activityType models.ActivityType, description string) (*models.Activity, error) {
	if err := validateActivity(activityType, description); err != nil {
		return nil, s.reject("activity", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	activity := s.logActivityLocked(activityType, description)
	s.recordMutation("activity", "create")
	return &activity, nil
}

// logActivityLocked appends an entry and drops the oldest past the limit.
// Caller must hold mu.
func (s *Store) logActivityLocked(activityType models.ActivityType, description string) models.Activity {
	activity := models.Activity{
		ID:          s.ids.New(),
		Type:        activityType,
		Description: description,
		CreatedAt:   s.clock.Now(),
	}

	s.activities = append(s.activities, activity)
	if s.activityLimit > 0 && len(s.activities) > s.activityLimit {
		s.activities = s.activities[len(s.activities)-s.activityLimit:]
	}

	s.logger.Debug("activity logged", "type", activityType, "description", description)
	return activity
}

// RecentActivity returns up to limit entries, newest first. limit <= 0 returns all.
func (s *Store) RecentActivity(limit int) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.recentActivityLocked(limit)
}

// recentActivityLocked walks the log backwards since it is kept oldest first
func (s *Store) recentActivityLocked(limit int) []models.Activity {
	n := len(s.activities)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.Activity, n)
	for i := range out {
		out[i] = s.activities[len(s.activities)-1-i]
	}
	return out
}
