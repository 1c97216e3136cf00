package rules

import "time"

// Category identifiers. One RuleConfig exists per category, never more.
const (
	CategoryDeterministic = "deterministic"
	CategoryCompliance    = "compliance"
	CategoryTone          = "tone"
	CategoryAccessibility = "accessibility"
)

// TotalWeight is the fixed allocation category weights must sum to.
const TotalWeight = 100.0

// Priorities an administrator can assign to a category.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// RuleConfig is the administrator-tunable policy for one rule category.
type RuleConfig struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Weight               float64   `json:"weight"`
	Priority             string    `json:"priority"`
	OverrideEnabled      bool      `json:"override_enabled"`
	BusinessOverrideText string    `json:"business_override_text"`
	ErrorMessage         string    `json:"error_message"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Snapshot is an immutable copy of the weights a single QA run scores with.
// Weights are renormalized to sum to TotalWeight; concurrent administrative
// edits never affect a snapshot once taken.
type Snapshot struct {
	Configs      map[string]RuleConfig
	Renormalized bool
}

// Weight returns the effective weight for a category, zero if unknown.
func (s Snapshot) Weight(category string) float64 {
	return s.Configs[category].Weight
}

// Overridden reports whether an issue with the given rule ID is suppressed
// from scoring by the category's business override.
func (s Snapshot) Overridden(category, ruleID string) bool {
	cfg, ok := s.Configs[category]
	if !ok || !cfg.OverrideEnabled {
		return false
	}
	return overrideMatches(cfg.BusinessOverrideText, ruleID)
}
