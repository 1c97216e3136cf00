package rules

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGStore implements Store using Postgres.
type PGStore struct {
	DB *sql.DB
}

const ruleColumns = `id, name, weight, priority, override_enabled, business_override_text, error_message, updated_at`

// List returns all rule configurations ordered by ID.
func (s *PGStore) List(ctx context.Context) ([]RuleConfig, error) {
	const query = `
SELECT ` + ruleColumns + `
FROM rule_configurations
ORDER BY id`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RuleConfig
	for rows.Next() {
		var cfg RuleConfig
		if err := scanRule(rows.Scan, &cfg); err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, rows.Err()
}

// Get returns one rule configuration by ID.
func (s *PGStore) Get(ctx context.Context, id string) (RuleConfig, error) {
	const query = `
SELECT ` + ruleColumns + `
FROM rule_configurations
WHERE id = $1`

	var cfg RuleConfig
	err := scanRule(s.DB.QueryRowContext(ctx, query, id).Scan, &cfg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RuleConfig{}, ErrNotFound
		}
		return RuleConfig{}, err
	}
	return cfg, nil
}

// Update replaces an existing rule configuration and returns the stored row.
func (s *PGStore) Update(ctx context.Context, cfg RuleConfig) (RuleConfig, error) {
	const query = `
UPDATE rule_configurations
SET name = $2,
    weight = $3,
    priority = $4,
    override_enabled = $5,
    business_override_text = $6,
    error_message = $7,
    updated_at = $8
WHERE id = $1
RETURNING ` + ruleColumns

	cfg.UpdatedAt = time.Now().UTC()
	var stored RuleConfig
	err := scanRule(s.DB.QueryRowContext(ctx, query,
		cfg.ID, cfg.Name, cfg.Weight, cfg.Priority,
		cfg.OverrideEnabled, cfg.BusinessOverrideText, cfg.ErrorMessage, cfg.UpdatedAt,
	).Scan, &stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RuleConfig{}, ErrNotFound
		}
		return RuleConfig{}, err
	}
	return stored, nil
}

// Seed inserts default configurations, leaving existing rows untouched.
func (s *PGStore) Seed(ctx context.Context, configs []RuleConfig) error {
	const query = `
INSERT INTO rule_configurations
    (id, name, weight, priority, override_enabled, business_override_text, error_message)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`

	for _, cfg := range configs {
		_, err := s.DB.ExecContext(ctx, query,
			cfg.ID, cfg.Name, cfg.Weight, cfg.Priority,
			cfg.OverrideEnabled, cfg.BusinessOverrideText, cfg.ErrorMessage,
		)
		if err != nil {
			return err
		}
	}

	const formulaQuery = `
INSERT INTO scoring_formula (id, description)
VALUES (1, $1)
ON CONFLICT (id) DO NOTHING`
	_, err := s.DB.ExecContext(ctx, formulaQuery, DefaultFormulaDescription)
	return err
}

// Formula returns the scoring formula description.
func (s *PGStore) Formula(ctx context.Context) (string, error) {
	const query = `SELECT description FROM scoring_formula WHERE id = 1`

	var description string
	err := s.DB.QueryRowContext(ctx, query).Scan(&description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DefaultFormulaDescription, nil
		}
		return "", err
	}
	return description, nil
}

// UpdateFormula replaces the scoring formula description.
func (s *PGStore) UpdateFormula(ctx context.Context, description string) (string, error) {
	const query = `
INSERT INTO scoring_formula (id, description, updated_at)
VALUES (1, $1, $2)
ON CONFLICT (id) DO UPDATE SET description = EXCLUDED.description, updated_at = EXCLUDED.updated_at
RETURNING description`

	var stored string
	err := s.DB.QueryRowContext(ctx, query, description, time.Now().UTC()).Scan(&stored)
	if err != nil {
		return "", err
	}
	return stored, nil
}

func scanRule(scan func(dest ...any) error, cfg *RuleConfig) error {
	return scan(
		&cfg.ID,
		&cfg.Name,
		&cfg.Weight,
		&cfg.Priority,
		&cfg.OverrideEnabled,
		&cfg.BusinessOverrideText,
		&cfg.ErrorMessage,
		&cfg.UpdatedAt,
	)
}
