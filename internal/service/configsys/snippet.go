package configsys

import (
	"strings"

	"confighub/internal/domain"
	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
)

// AddSnippet creates a snippet
func (s *Store) AddSnippet(req *svc.CreateSnippetRequest) (*models.Snippet, error) {
	if err := validateCreateSnippet(req); err != nil {
		return nil, s.reject("snippet", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snippet := s.addSnippetLocked(req)
	s.recordMutation("snippet", "create")

	s.logger.Info("snippet created",
		"id", snippet.ID,
		"title", snippet.Title,
		"language", snippet.Language,
	)

	return &snippet, nil
}

func (s *Store) addSnippetLocked(req *svc.CreateSnippetRequest) models.Snippet {
	now := s.clock.Now()
	snippet := models.Snippet{
		ID:          s.ids.New(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Language:    req.Language,
		Content:     req.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.snippets = append(s.snippets, snippet)
	return snippet
}

// UpdateSnippet merges the provided fields into the snippet and refreshes updatedAt
func (s *Store) UpdateSnippet(id string, req *svc.UpdateSnippetRequest) (*models.Snippet, error) {
	if err := validateUpdateSnippet(req); err != nil {
		return nil, s.reject("snippet", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.snippetIndexLocked(id)
	if idx < 0 {
		return nil, s.reject("snippet", domain.NewNotFound("snippet", id))
	}
	snippet := &s.snippets[idx]

	if req.Title != nil {
		snippet.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		snippet.Description = *req.Description
	}
	if req.Language != nil {
		snippet.Language = *req.Language
	}
	if req.Content != nil {
		snippet.Content = *req.Content
	}
	snippet.UpdatedAt = s.clock.Now()
	s.recordMutation("snippet", "update")

	s.logger.Info("snippet updated", "id", snippet.ID, "title", snippet.Title)

	out := *snippet
	return &out, nil
}

// DeleteSnippet removes a snippet
func (s *Store) DeleteSnippet(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.snippetIndexLocked(id)
	if idx < 0 {
		return s.reject("snippet", domain.NewNotFound("snippet", id))
	}
	title := s.snippets[idx].Title
	s.snippets = append(s.snippets[:idx], s.snippets[idx+1:]...)
	s.recordMutation("snippet", "delete")

	s.logger.Info("snippet deleted", "id", id, "title", title)
	return nil
}

// GetSnippet retrieves a snippet by id
func (s *Store) GetSnippet(id string) (*models.Snippet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.snippetIndexLocked(id)
	if idx < 0 {
		return nil, domain.NewNotFound("snippet", id)
	}
	out := s.snippets[idx]
	return &out, nil
}

// ListSnippets returns every snippet in insertion order
func (s *Store) ListSnippets() []models.Snippet {
	return s.SearchSnippets(svc.SnippetFilter{})
}

func (s *Store) snippetIndexLocked(id string) int {
	for i := range s.snippets {
		if s.snippets[i].ID == id {
			return i
		}
	}
	return -1
}
