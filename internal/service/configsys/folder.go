package configsys

import (
	"fmt"
	"strings"

	"confighub/internal/domain"
	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
)

// AddFolder creates a folder with a generated id and the current time
func (s *Store) AddFolder(req *svc.CreateFolderRequest) (*models.Folder, error) {
	if err := validateCreateFolder(req); err != nil {
		return nil, s.reject("folder", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folder := s.addFolderLocked(req)
	s.logActivityLocked(models.ActivityCreateFolder, fmt.Sprintf("Created folder %q", folder.Name))
	s.recordMutation("folder", "create")

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"icon", folder.Icon,
	)

	out := folder.Clone()
	return &out, nil
}

func (s *Store) addFolderLocked(req *svc.CreateFolderRequest) models.Folder {
	folder := models.Folder{
		ID:          s.ids.New(),
		Name:        strings.TrimSpace(req.Name),
		Icon:        req.Icon,
		Description: cloneString(req.Description),
		CreatedAt:   s.clock.Now(),
	}
	s.folders = append(s.folders, folder)
	return folder
}

// UpdateFolder merges the provided fields into the folder
func (s *Store) UpdateFolder(id string, req *svc.UpdateFolderRequest) (*models.Folder, error) {
	if err := validateUpdateFolder(req); err != nil {
		return nil, s.reject("folder", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.folderIndexLocked(id)
	if idx < 0 {
		return nil, s.reject("folder", domain.NewNotFound("folder", id))
	}
	folder := &s.folders[idx]

	if req.Name != nil {
		folder.Name = strings.TrimSpace(*req.Name)
	}
	if req.Icon != nil {
		folder.Icon = *req.Icon
	}
	if req.Description.Present {
		folder.Description = cloneString(req.Description.Value)
	}
	s.recordMutation("folder", "update")

	s.logger.Info("folder updated",
		"id", folder.ID,
		"name", folder.Name,
		"icon", folder.Icon,
	)

	out := folder.Clone()
	return &out, nil
}

// DeleteFolder removes the folder and every config inside it. Both happen
// under one lock, so no reader observes a config pointing at a missing folder.
func (s *Store) DeleteFolder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.folderIndexLocked(id)
	if idx < 0 {
		return s.reject("folder", domain.NewNotFound("folder", id))
	}
	folder := s.folders[idx]

	kept := s.configs[:0]
	removed := 0
	for _, cfg := range s.configs {
		if cfg.FolderID == id {
			removed++
			s.logger.Debug("cascade deleting config", "id", cfg.ID, "name", cfg.Name, "folder_id", id)
			continue
		}
		kept = append(kept, cfg)
	}
	clear(s.configs[len(kept):])
	s.configs = kept
	s.folders = append(s.folders[:idx], s.folders[idx+1:]...)

	s.logActivityLocked(models.ActivityDeleteFolder,
		fmt.Sprintf("Deleted folder %q and %d config(s)", folder.Name, removed))
	s.recordMutation("folder", "delete")

	s.logger.Info("folder deleted",
		"id", id,
		"name", folder.Name,
		"configs_removed", removed,
	)

	return nil
}

// GetFolder retrieves a folder by id
func (s *Store) GetFolder(id string) (*models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.folderIndexLocked(id)
	if idx < 0 {
		return nil, domain.NewNotFound("folder", id)
	}
	out := s.folders[idx].Clone()
	return &out, nil
}

// ListFolders returns all folders in creation order
func (s *Store) ListFolders() []models.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Folder, len(s.folders))
	for i, f := range s.folders {
		out[i] = f.Clone()
	}
	return out
}

// FolderConfigCounts returns the number of configs per folder id.
// Every folder is present, empty ones with 0.
func (s *Store) FolderConfigCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.folders))
	for _, f := range s.folders {
		counts[f.ID] = 0
	}
	for _, cfg := range s.configs {
		counts[cfg.FolderID]++
	}
	return counts
}

func (s *Store) folderIndexLocked(id string) int {
	for i := range s.folders {
		if s.folders[i].ID == id {
			return i
		}
	}
	return -1
}
