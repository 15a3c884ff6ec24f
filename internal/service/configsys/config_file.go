package configsys

import (
	"fmt"
	"strings"

	"confighub/internal/domain"
	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
)

// AddConfig creates a config file with empty history inside an existing folder
func (s *Store) AddConfig(req *svc.CreateConfigRequest) (*models.ConfigFile, error) {
	if err := validateCreateConfig(req); err != nil {
		return nil, s.reject("config", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.addConfigLocked(req)
	if err != nil {
		return nil, s.reject("config", err)
	}
	s.logActivityLocked(models.ActivityCreateConfig, fmt.Sprintf("Created config %q", cfg.Name))
	s.recordMutation("config", "create")

	s.logger.Info("config created",
		"id", cfg.ID,
		"name", cfg.Name,
		"folder_id", cfg.FolderID,
	)

	out := cfg.Clone()
	return &out, nil
}

func (s *Store) addConfigLocked(req *svc.CreateConfigRequest) (models.ConfigFile, error) {
	if s.folderIndexLocked(req.FolderID) < 0 {
		return models.ConfigFile{}, domain.NewNotFound("folder", req.FolderID)
	}

	now := s.clock.Now()
	cfg := models.ConfigFile{
		ID:        s.ids.New(),
		FolderID:  req.FolderID,
		Name:      strings.TrimSpace(req.Name),
		Content:   req.Content,
		Language:  cloneString(req.Language),
		CreatedAt: now,
		UpdatedAt: now,
		History:   []models.ConfigVersion{},
	}
	s.configs = append(s.configs, cfg)
	return cfg, nil
}

// UpdateConfig merges the provided fields into the config.
//   - A content change unshifts the previous content and updatedAt onto history.
//   - updatedAt is refreshed on every update.
//   - An update_config activity is logged when name or content is present.
func (s *Store) UpdateConfig(id string, req *svc.UpdateConfigRequest) (*models.ConfigFile, error) {
	if err := validateUpdateConfig(req); err != nil {
		return nil, s.reject("config", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.configIndexLocked(id)
	if idx < 0 {
		return nil, s.reject("config", domain.NewNotFound("config", id))
	}
	if req.FolderID != nil && s.folderIndexLocked(*req.FolderID) < 0 {
		return nil, s.reject("config", domain.NewNotFound("folder", *req.FolderID))
	}
	cfg := &s.configs[idx]

	pushed := false
	if req.Content != nil && *req.Content != cfg.Content {
		history := make([]models.ConfigVersion, 0, len(cfg.History)+1)
		history = append(history, models.ConfigVersion{Content: cfg.Content, UpdatedAt: cfg.UpdatedAt})
		history = append(history, cfg.History...)
		if s.historyLimit > 0 && len(history) > s.historyLimit {
			history = history[:s.historyLimit]
		}
		cfg.History = history
		cfg.Content = *req.Content
		pushed = true
	}
	if req.Name != nil {
		cfg.Name = strings.TrimSpace(*req.Name)
	}
	if req.FolderID != nil {
		cfg.FolderID = *req.FolderID
	}
	if req.Language.Present {
		cfg.Language = cloneString(req.Language.Value)
	}
	cfg.UpdatedAt = s.clock.Now()

	if req.Name != nil || req.Content != nil {
		s.logActivityLocked(models.ActivityUpdateConfig, fmt.Sprintf("Updated config %q", cfg.Name))
	}
	s.recordMutation("config", "update")

	s.logger.Info("config updated",
		"id", cfg.ID,
		"name", cfg.Name,
		"folder_id", cfg.FolderID,
		"history_pushed", pushed,
		"history_len", len(cfg.History),
	)

	out := cfg.Clone()
	return &out, nil
}

// DeleteConfig removes a config file
func (s *Store) DeleteConfig(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.configIndexLocked(id)
	if idx < 0 {
		return s.reject("config", domain.NewNotFound("config", id))
	}
	cfg := s.configs[idx]
	s.configs = append(s.configs[:idx], s.configs[idx+1:]...)

	s.logActivityLocked(models.ActivityDeleteConfig, fmt.Sprintf("Deleted config %q", cfg.Name))
	s.recordMutation("config", "delete")

	s.logger.Info("config deleted",
		"id", id,
		"name", cfg.Name,
		"folder_id", cfg.FolderID,
	)

	return nil
}

// GetConfig retrieves a config file by id, history included
func (s *Store) GetConfig(id string) (*models.ConfigFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.configIndexLocked(id)
	if idx < 0 {
		return nil, domain.NewNotFound("config", id)
	}
	out := s.configs[idx].Clone()
	return &out, nil
}

// ListConfigs returns every config in insertion order
func (s *Store) ListConfigs() []models.ConfigFile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterConfigsLocked(func(models.ConfigFile) bool { return true })
}

// GetConfigsByFolder returns the configs whose FolderID matches, evaluated
// against the collection at call time
func (s *Store) GetConfigsByFolder(folderID string) []models.ConfigFile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterConfigsLocked(func(c models.ConfigFile) bool { return c.FolderID == folderID })
}

// ConfigHistory returns the prior versions of a config, most recent first
func (s *Store) ConfigHistory(id string) ([]models.ConfigVersion, error) {
	cfg, err := s.GetConfig(id)
	if err != nil {
		return nil, err
	}
	return cfg.History, nil
}

func (s *Store) filterConfigsLocked(keep func(models.ConfigFile) bool) []models.ConfigFile {
	out := []models.ConfigFile{}
	for _, cfg := range s.configs {
		if keep(cfg) {
			out = append(out, cfg.Clone())
		}
	}
	return out
}

func (s *Store) configIndexLocked(id string) int {
	for i := range s.configs {
		if s.configs[i].ID == id {
			return i
		}
	}
	return -1
}
