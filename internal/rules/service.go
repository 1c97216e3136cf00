package rules

import (
	"context"
	"fmt"
	"math"
	"strings"

	"email-qa-backend/internal/shared/telemetry"
)

// Service provides rule configuration management and scoring snapshots.
type Service struct {
	Store Store
}

// NewService constructs a Service.
func NewService(store Store) *Service {
	return &Service{Store: store}
}

// EnsureDefaults seeds the default rule set if the store is empty.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	return s.Store.Seed(ctx, Defaults())
}

// List returns all rule configurations.
func (s *Service) List(ctx context.Context) ([]RuleConfig, error) {
	return s.Store.List(ctx)
}

// Update validates and persists changes to one rule configuration.
// The ID and Name of a category are fixed; only policy fields change.
func (s *Service) Update(ctx context.Context, id string, patch UpdatePatch) (RuleConfig, error) {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return RuleConfig{}, err
	}

	if patch.Weight != nil {
		if *patch.Weight < 0 || *patch.Weight > TotalWeight {
			return RuleConfig{}, fmt.Errorf("%w: weight must be between 0 and %v", ErrInvalidConfig, TotalWeight)
		}
		current.Weight = *patch.Weight
	}
	if patch.Priority != nil {
		if !validPriority(*patch.Priority) {
			return RuleConfig{}, fmt.Errorf("%w: priority must be High, Medium, or Low", ErrInvalidConfig)
		}
		current.Priority = *patch.Priority
	}
	if patch.OverrideEnabled != nil {
		current.OverrideEnabled = *patch.OverrideEnabled
	}
	if patch.BusinessOverrideText != nil {
		current.BusinessOverrideText = strings.TrimSpace(*patch.BusinessOverrideText)
	}
	if patch.ErrorMessage != nil {
		current.ErrorMessage = *patch.ErrorMessage
	}

	updated, err := s.Store.Update(ctx, current)
	if err != nil {
		return RuleConfig{}, err
	}
	telemetry.Info("rules.updated", map[string]any{
		"rule_id": updated.ID,
		"weight":  updated.Weight,
	})
	return updated, nil
}

// Snapshot captures the current configuration for one QA run. Weights that
// do not sum to TotalWeight are renormalized proportionally; a zero-sum
// configuration falls back to the defaults.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	configs, err := s.Store.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if len(configs) == 0 {
		configs = Defaults()
	}

	sum := 0.0
	for _, cfg := range configs {
		sum += cfg.Weight
	}

	snap := Snapshot{Configs: make(map[string]RuleConfig, len(configs))}
	switch {
	case sum <= 0:
		telemetry.Warn("rules.zero_weights", map[string]any{"count": len(configs)})
		byID := make(map[string]RuleConfig, len(configs))
		for _, cfg := range configs {
			byID[cfg.ID] = cfg
		}
		for _, def := range Defaults() {
			cfg, ok := byID[def.ID]
			if !ok {
				cfg = def
			}
			cfg.Weight = def.Weight
			snap.Configs[cfg.ID] = cfg
		}
		snap.Renormalized = true
	case math.Abs(sum-TotalWeight) > 1e-9:
		for _, cfg := range configs {
			cfg.Weight = cfg.Weight / sum * TotalWeight
			snap.Configs[cfg.ID] = cfg
		}
		snap.Renormalized = true
		telemetry.Warn("rules.renormalized", map[string]any{"raw_sum": sum})
	default:
		for _, cfg := range configs {
			snap.Configs[cfg.ID] = cfg
		}
	}
	return snap, nil
}

// Formula returns the scoring formula description.
func (s *Service) Formula(ctx context.Context) (string, error) {
	return s.Store.Formula(ctx)
}

// UpdateFormula replaces the scoring formula description.
func (s *Service) UpdateFormula(ctx context.Context, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("%w: formula description cannot be empty", ErrInvalidConfig)
	}
	return s.Store.UpdateFormula(ctx, description)
}

// UpdatePatch holds the updatable fields of a rule configuration.
// Nil fields keep the stored value.
type UpdatePatch struct {
	Weight               *float64 `json:"weight"`
	Priority             *string  `json:"priority"`
	OverrideEnabled      *bool    `json:"override_enabled"`
	BusinessOverrideText *string  `json:"business_override_text"`
	ErrorMessage         *string  `json:"error_message"`
}

func validPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// overrideMatches reports whether an override note names a specific rule ID.
// An empty note suppresses nothing even when overrides are enabled.
func overrideMatches(note, ruleID string) bool {
	note = strings.ToLower(strings.TrimSpace(note))
	if note == "" || ruleID == "" {
		return false
	}
	return strings.Contains(note, strings.ToLower(ruleID))
}
