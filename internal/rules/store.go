package rules

import "context"

// Store persists rule configurations and the scoring formula description.
type Store interface {
	List(ctx context.Context) ([]RuleConfig, error)
	Get(ctx context.Context, id string) (RuleConfig, error)
	Update(ctx context.Context, cfg RuleConfig) (RuleConfig, error)
	Seed(ctx context.Context, configs []RuleConfig) error

	Formula(ctx context.Context) (string, error)
	UpdateFormula(ctx context.Context, description string) (string, error)
}
