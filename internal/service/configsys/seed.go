package configsys

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"confighub/internal/domain"
	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"

	"gopkg.in/yaml.v3"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// Seed is the initial content of a store, decoded from YAML
type Seed struct {
	User             models.User     `yaml:"user"`
	CurrentWorkspace string          `yaml:"current_workspace,omitempty"` // workspace id; first workspace when empty
	Workspaces       []SeedWorkspace `yaml:"workspaces"`
	Folders          []SeedFolder    `yaml:"folders,omitempty"`
	Prompts          []SeedPrompt    `yaml:"prompts,omitempty"`
	Snippets         []SeedSnippet   `yaml:"snippets,omitempty"`
}

// SeedWorkspace keeps its id when one is given, so current_workspace can reference it
type SeedWorkspace struct {
	ID     string  `yaml:"id,omitempty"`
	Name   string  `yaml:"name"`
	Email  *string `yaml:"email,omitempty"`
	Avatar string  `yaml:"avatar,omitempty"`
	Color  string  `yaml:"color,omitempty"`
}

// SeedFolder lists its configs inline
type SeedFolder struct {
	Name        string            `yaml:"name"`
	Icon        models.FolderIcon `yaml:"icon"`
	Description *string           `yaml:"description,omitempty"`
	Configs     []SeedConfig      `yaml:"configs,omitempty"`
}

type SeedConfig struct {
	Name     string  `yaml:"name"`
	Content  string  `yaml:"content"`
	Language *string `yaml:"language,omitempty"`
}

type SeedPrompt struct {
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	Category *string  `yaml:"category,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
}

type SeedSnippet struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
	Content     string `yaml:"content"`
}

// DefaultSeed returns the embedded default seed
func DefaultSeed() (*Seed, error) {
	seed, err := ParseSeed(defaultSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded seed: %w", err)
	}
	return seed, nil
}

// LoadSeedFile reads a seed from a YAML file
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed %s: %w", path, err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed %s: %w", path, err)
	}
	return seed, nil
}

// ParseSeed decodes YAML seed data. Unknown keys are rejected.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, domain.NewValidation(err.Error())
	}
	return &seed, nil
}

// applySeed populates an empty store. Seeded mutations don't write activities.
func (s *Store) applySeed(seed *Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(seed.Workspaces) == 0 {
		return &domain.InvariantViolationError{Message: "seed must contain at least one workspace"}
	}
	for i, w := range seed.Workspaces {
		req := &svc.CreateWorkspaceRequest{Name: w.Name, Email: w.Email, Avatar: w.Avatar, Color: w.Color}
		if err := validateCreateWorkspace(req); err != nil {
			return fmt.Errorf("workspace %d: %w", i, err)
		}
		if w.ID != "" && s.workspaceIndexLocked(w.ID) >= 0 {
			return domain.NewValidation(fmt.Sprintf("duplicate workspace id %q", w.ID))
		}
		s.addWorkspaceLocked(w.ID, req)
	}
	s.currentID = s.workspaces[0].ID
	if seed.CurrentWorkspace != "" {
		if s.workspaceIndexLocked(seed.CurrentWorkspace) < 0 {
			return domain.NewNotFound("workspace", seed.CurrentWorkspace)
		}
		s.currentID = seed.CurrentWorkspace
	}

	s.user = seed.User
	if s.user.Avatar == "" {
		s.user.Avatar = deriveInitials(s.user.Name)
	}

	for i, f := range seed.Folders {
		req := &svc.CreateFolderRequest{Name: f.Name, Icon: f.Icon, Description: f.Description}
		if err := validateCreateFolder(req); err != nil {
			return fmt.Errorf("folder %d: %w", i, err)
		}
		folder := s.addFolderLocked(req)
		for j, c := range f.Configs {
			creq := &svc.CreateConfigRequest{FolderID: folder.ID, Name: c.Name, Content: c.Content, Language: c.Language}
			if err := validateCreateConfig(creq); err != nil {
				return fmt.Errorf("folder %q config %d: %w", f.Name, j, err)
			}
			if _, err := s.addConfigLocked(creq); err != nil {
				return err
			}
		}
	}

	for i, p := range seed.Prompts {
		req := &svc.CreatePromptRequest{Title: p.Title, Content: p.Content, Category: p.Category, Tags: p.Tags}
		if err := validateCreatePrompt(req); err != nil {
			return fmt.Errorf("prompt %d: %w", i, err)
		}
		s.addPromptLocked(req)
	}

	for i, sn := range seed.Snippets {
		req := &svc.CreateSnippetRequest{Title: sn.Title, Description: sn.Description, Language: sn.Language, Content: sn.Content}
		if err := validateCreateSnippet(req); err != nil {
			return fmt.Errorf("snippet %d: %w", i, err)
		}
		s.addSnippetLocked(req)
	}

	return nil
}
