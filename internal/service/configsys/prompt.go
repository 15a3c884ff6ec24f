package configsys

import (
	"strings"

	"confighub/internal/domain"
	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
)

// AddPrompt creates a prompt. Tags are normalized by normalizeTags.
func (s *Store) AddPrompt(req *svc.CreatePromptRequest) (*models.Prompt, error) {
	if err := validateCreatePrompt(req); err != nil {
		return nil, s.reject("prompt", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prompt := s.addPromptLocked(req)
	s.recordMutation("prompt", "create")

	s.logger.Info("prompt created",
		"id", prompt.ID,
		"title", prompt.Title,
		"tags", prompt.Tags,
	)

	out := prompt.Clone()
	return &out, nil
}

func (s *Store) addPromptLocked(req *svc.CreatePromptRequest) models.Prompt {
	now := s.clock.Now()
	prompt := models.Prompt{
		ID:        s.ids.New(),
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Category:  cloneString(req.Category),
		Tags:      normalizeTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.prompts = append(s.prompts, prompt)
	return prompt
}

// UpdatePrompt merges the provided fields into the prompt and refreshes updatedAt
func (s *Store) UpdatePrompt(id string, req *svc.UpdatePromptRequest) (*models.Prompt, error) {
	if err := validateUpdatePrompt(req); err != nil {
		return nil, s.reject("prompt", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.promptIndexLocked(id)
	if idx < 0 {
		return nil, s.reject("prompt", domain.NewNotFound("prompt", id))
	}
	prompt := &s.prompts[idx]

	if req.Title != nil {
		prompt.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		prompt.Content = *req.Content
	}
	if req.Category.Present {
		prompt.Category = cloneString(req.Category.Value)
	}
	if req.Tags != nil {
		prompt.Tags = normalizeTags(req.Tags)
	}
	prompt.UpdatedAt = s.clock.Now()
	s.recordMutation("prompt", "update")

	s.logger.Info("prompt updated", "id", prompt.ID, "title", prompt.Title)

	out := prompt.Clone()
	return &out, nil
}

// DeletePrompt removes a prompt
func (s *Store) DeletePrompt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.promptIndexLocked(id)
	if idx < 0 {
		return s.reject("prompt", domain.NewNotFound("prompt", id))
	}
	title := s.prompts[idx].Title
	s.prompts = append(s.prompts[:idx], s.prompts[idx+1:]...)
	s.recordMutation("prompt", "delete")

	s.logger.Info("prompt deleted", "id", id, "title", title)
	return nil
}

// GetPrompt retrieves a prompt by id
func (s *Store) GetPrompt(id string) (*models.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.promptIndexLocked(id)
	if idx < 0 {
		return nil, domain.NewNotFound("prompt", id)
	}
	out := s.prompts[idx].Clone()
	return &out, nil
}

// ListPrompts returns every prompt in insertion order
func (s *Store) ListPrompts() []models.Prompt {
	return s.SearchPrompts(svc.PromptFilter{})
}

func (s *Store) promptIndexLocked(id string) int {
	for i := range s.prompts {
		if s.prompts[i].ID == id {
			return i
		}
	}
	return -1
}
