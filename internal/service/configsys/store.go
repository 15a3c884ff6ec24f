package configsys

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"confighub/internal/domain"
	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
	"confighub/internal/metrics"
)

// Store is the in-memory EntityStore. It owns every collection; callers only
// ever receive copies. All operations are serialized by mu, so a call is
// atomic with respect to any other call.
type Store struct {
	mu sync.RWMutex

	folders    []models.Folder
	configs    []models.ConfigFile
	prompts    []models.Prompt
	snippets   []models.Snippet
	workspaces []models.Workspace
	activities []models.Activity // oldest first; read newest first via recentActivityLocked
	user       models.User
	currentID  string

	clock         Clock
	ids           IDGenerator
	historyLimit  int
	activityLimit int
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

var _ svc.EntityStore = (*Store)(nil)

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source (RealClock by default)
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator overrides id generation (random UUIDs by default)
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithHistoryLimit caps how many prior versions a config keeps.
// 0 keeps every version.
func WithHistoryLimit(n int) Option {
	return func(s *Store) { s.historyLimit = n }
}

// WithActivityLimit caps the activity log length. 0 keeps every entry.
func WithActivityLimit(n int) Option {
	return func(s *Store) { s.activityLimit = n }
}

// WithMetrics records mutations and collection sizes
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// NewStore creates a store populated from seed. The seed must contain at
// least one workspace so that a current workspace exists from the start.
func NewStore(seed *Seed, logger *slog.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		clock:  RealClock{},
		ids:    UUIDGenerator{},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.historyLimit < 0 || s.activityLimit < 0 {
		return nil, domain.NewValidation("limits cannot be negative")
	}

	if seed == nil {
		return nil, &domain.InvariantViolationError{Message: "seed is required"}
	}
	if err := s.applySeed(seed); err != nil {
		return nil, fmt.Errorf("apply seed: %w", err)
	}
	s.refreshGauges()

	s.logger.Info("entity store initialized",
		"workspaces", len(s.workspaces),
		"current_workspace", s.currentID,
		"folders", len(s.folders),
		"configs", len(s.configs),
		"prompts", len(s.prompts),
		"snippets", len(s.snippets),
		"history_limit", s.historyLimit,
	)

	return s, nil
}

// recordMutation bumps the mutation counter and refreshes collection gauges.
// Caller must hold mu.
func (s *Store) recordMutation(entity, op string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Mutations.WithLabelValues(entity, op).Inc()
	s.refreshGauges()
}

// reject counts a refused mutation and passes err through
func (s *Store) reject(entity string, err error) error {
	if s.metrics == nil || err == nil {
		return err
	}
	reason := "other"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		reason = "not_found"
	case errors.Is(err, domain.ErrValidation):
		reason = "validation"
	case errors.Is(err, domain.ErrInvariantViolation):
		reason = "invariant"
	}
	s.metrics.Rejections.WithLabelValues(entity, reason).Inc()
	return err
}

func (s *Store) refreshGauges() {
	if s.metrics == nil {
		return
	}
	s.metrics.Entities.WithLabelValues("folder").Set(float64(len(s.folders)))
	s.metrics.Entities.WithLabelValues("config").Set(float64(len(s.configs)))
	s.metrics.Entities.WithLabelValues("prompt").Set(float64(len(s.prompts)))
	s.metrics.Entities.WithLabelValues("snippet").Set(float64(len(s.snippets)))
	s.metrics.Entities.WithLabelValues("workspace").Set(float64(len(s.workspaces)))
	s.metrics.Entities.WithLabelValues("activity").Set(float64(len(s.activities)))
}

// Dashboard returns collection counts, the current workspace and the
// five most recent activities
func (s *Store) Dashboard() models.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Dashboard{
		Folders:          len(s.folders),
		Configs:          len(s.configs),
		Prompts:          len(s.prompts),
		Snippets:         len(s.snippets),
		Workspaces:       len(s.workspaces),
		CurrentWorkspace: s.currentWorkspaceLocked(),
		RecentActivity:   s.recentActivityLocked(5),
	}
}
