package agents

import (
	"context"

	"email-qa-backend/internal/checks"
	"email-qa-backend/internal/emails"
)

// Kind identifies one of the fixed judgment dimensions. New agents are added
// by adding a variant, never by runtime type inspection.
type Kind string

const (
	KindCompliance    Kind = "compliance"
	KindTone          Kind = "tone"
	KindAccessibility Kind = "accessibility"
)

// Input is what every judgment agent receives for one email.
type Input struct {
	EmailID       string
	HTMLContent   string
	Metadata      emails.Metadata
	Deterministic []checks.DeterministicResult
}

// Issue is one raw finding as an agent reports it, before normalization.
type Issue struct {
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// Result is one agent's contribution to a QA run.
type Result struct {
	Kind     Kind    `json:"kind"`
	Issues   []Issue `json:"issues"`
	Summary  string  `json:"summary"`
	Degraded bool    `json:"degraded"`
}

// Analyzer is the capability every judgment agent implements.
type Analyzer interface {
	Kind() Kind
	Analyze(ctx context.Context, input Input) (Result, error)
}
