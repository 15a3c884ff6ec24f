package configsys

import (
	"sort"
	"strings"

	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
)

// SearchConfigs returns configs matching every non-empty filter field.
// Query is a case-insensitive substring match on name and content.
func (s *Store) SearchConfigs(filter svc.ConfigFilter) []models.ConfigFile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterConfigsLocked(func(c models.ConfigFile) bool {
		if filter.FolderID != "" && c.FolderID != filter.FolderID {
			return false
		}
		if filter.Language != "" && (c.Language == nil || !strings.EqualFold(*c.Language, filter.Language)) {
			return false
		}
		if filter.Query != "" && !containsFold(c.Name, filter.Query) && !containsFold(c.Content, filter.Query) {
			return false
		}
		return true
	})
}

// SearchPrompts returns prompts matching every non-empty filter field.
// Query matches title and content; Category and Tag match case-insensitively.
func (s *Store) SearchPrompts(filter svc.PromptFilter) []models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Prompt{}
	for _, p := range s.prompts {
		if filter.Category != "" && (p.Category == nil || !strings.EqualFold(*p.Category, filter.Category)) {
			continue
		}
		if filter.Tag != "" && !hasTag(p.Tags, filter.Tag) {
			continue
		}
		if filter.Query != "" && !containsFold(p.Title, filter.Query) && !containsFold(p.Content, filter.Query) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// PromptTags returns every tag used by a prompt, deduplicated
// case-insensitively and sorted
func (s *Store) PromptTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []string
	for _, p := range s.prompts {
		all = append(all, p.Tags...)
	}
	tags := normalizeTags(all)
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})
	return tags
}

// SearchSnippets returns snippets matching every non-empty filter field.
// Query matches title, description and content.
func (s *Store) SearchSnippets(filter svc.SnippetFilter) []models.Snippet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Snippet{}
	for _, sn := range s.snippets {
		if filter.Language != "" && !strings.EqualFold(sn.Language, filter.Language) {
			continue
		}
		if filter.Query != "" &&
			!containsFold(sn.Title, filter.Query) &&
			!containsFold(sn.Description, filter.Query) &&
			!containsFold(sn.Content, filter.Query) {
			continue
		}
		out = append(out, sn)
	}
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
