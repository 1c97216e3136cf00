package rules

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps rule configurations in memory for tests and local runs.
type MemoryStore struct {
	mu      sync.RWMutex
	configs map[string]RuleConfig
	formula string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{configs: make(map[string]RuleConfig)}
}

// List returns all rule configurations ordered by ID.
func (s *MemoryStore) List(ctx context.Context) ([]RuleConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]RuleConfig, 0, len(s.configs))
	for _, cfg := range s.configs {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Get returns one rule configuration by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (RuleConfig, error) {
	if err := ctx.Err(); err != nil {
		return RuleConfig{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[id]
	if !ok {
		return RuleConfig{}, ErrNotFound
	}
	return cfg, nil
}

// Update replaces an existing rule configuration.
func (s *MemoryStore) Update(ctx context.Context, cfg RuleConfig) (RuleConfig, error) {
	if err := ctx.Err(); err != nil {
		return RuleConfig{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[cfg.ID]; !ok {
		return RuleConfig{}, ErrNotFound
	}
	cfg.UpdatedAt = time.Now().UTC()
	s.configs[cfg.ID] = cfg
	return cfg, nil
}

// Seed inserts configurations that do not exist yet.
func (s *MemoryStore) Seed(ctx context.Context, configs []RuleConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cfg := range configs {
		if _, ok := s.configs[cfg.ID]; ok {
			continue
		}
		if cfg.UpdatedAt.IsZero() {
			cfg.UpdatedAt = time.Now().UTC()
		}
		s.configs[cfg.ID] = cfg
	}
	if s.formula == "" {
		s.formula = DefaultFormulaDescription
	}
	return nil
}

// Formula returns the scoring formula description.
func (s *MemoryStore) Formula(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.formula == "" {
		return DefaultFormulaDescription, nil
	}
	return s.formula, nil
}

// UpdateFormula replaces the scoring formula description.
func (s *MemoryStore) UpdateFormula(ctx context.Context, description string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formula = description
	return s.formula, nil
}
