package qa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"email-qa-backend/internal/agents"
	"email-qa-backend/internal/checks"
	"email-qa-backend/internal/emails"
	"email-qa-backend/internal/rules"
	"email-qa-backend/internal/shared/telemetry"
)

// Run states, in pipeline order. Terminal states are assembled and errored.
const (
	statePending           = "pending"
	stateDeterministicDone = "deterministic_done"
	stateAgentsDone        = "agents_done"
	stateScored            = "scored"
	stateFixed             = "fixed"
	stateAssembled         = "assembled"
	stateErrored           = "errored"
)

// Orchestrator runs one email through the full QA pipeline: deterministic
// checks, judgment agents in parallel, scoring against a weight snapshot,
// fix suggestions, and report assembly.
type Orchestrator struct {
	Runner   *checks.Runner
	Adapters []*agents.Adapter
	Rules    *rules.Service
	Scorer   *Scorer
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(runner *checks.Runner, adapters []*agents.Adapter, ruleSvc *rules.Service, scorer *Scorer) *Orchestrator {
	return &Orchestrator{Runner: runner, Adapters: adapters, Rules: ruleSvc, Scorer: scorer}
}

// Run executes the pipeline for one email. The run can be cancelled up to
// the moment scoring begins; after that it completes atomically. Degraded
// agents never abort the run.
func (o *Orchestrator) Run(ctx context.Context, email emails.EmailTemplate) (Report, error) {
	transition := func(state string) {
		telemetry.Info("qa.run.state", map[string]any{
			"email_id": email.ID,
			"state":    state,
		})
	}
	transition(statePending)

	if strings.TrimSpace(email.HTMLContent) == "" {
		transition(stateErrored)
		return Report{}, ErrEmptyContent
	}

	deterministic, err := o.Runner.Run(ctx, email.HTMLContent, email.Metadata)
	if err != nil {
		transition(stateErrored)
		return Report{}, fmt.Errorf("deterministic checks: %w", err)
	}
	transition(stateDeterministicDone)

	input := agents.Input{
		EmailID:       email.ID,
		HTMLContent:   email.HTMLContent,
		Metadata:      email.Metadata,
		Deterministic: deterministic,
	}
	results := make([]agents.Result, len(o.Adapters))
	g, agentCtx := errgroup.WithContext(ctx)
	for i, adapter := range o.Adapters {
		i, adapter := i, adapter
		g.Go(func() error {
			results[i] = adapter.Run(agentCtx, input)
			return nil
		})
	}
	g.Wait() // adapters absorb their own failures
	transition(stateAgentsDone)

	// Last cancellation point. Once scoring starts the run completes.
	if err := ctx.Err(); err != nil {
		transition(stateErrored)
		return Report{}, err
	}

	snap, err := o.Rules.Snapshot(ctx)
	if err != nil {
		transition(stateErrored)
		return Report{}, fmt.Errorf("rule snapshot: %w", err)
	}

	findings := make(map[agents.Kind]AgentFindings, len(results))
	var degraded []string
	issues := normalizeDeterministic(deterministic)
	for _, result := range results {
		normalized := normalizeAgentIssues(result)
		findings[result.Kind] = AgentFindings{
			Issues:   normalized,
			Summary:  result.Summary,
			Degraded: result.Degraded,
		}
		if result.Degraded {
			degraded = append(degraded, string(result.Kind))
		}
		issues = append(issues, normalized...)
	}

	score, err := o.Scorer.Score(deterministic, issues, snap)
	if err != nil {
		transition(stateErrored)
		return Report{}, err
	}
	transition(stateScored)

	fixes := SuggestFixes(issues)
	transition(stateFixed)

	report := Report{
		ID:                   uuid.NewString(),
		EmailID:              email.ID,
		OverallStatus:        score.OverallStatus,
		RiskScore:            score.RiskScore,
		RiskLevel:            score.RiskLevel,
		DeterministicResults: deterministic,
		Compliance:           findings[agents.KindCompliance],
		Tone:                 findings[agents.KindTone],
		Accessibility:        findings[agents.KindAccessibility],
		FixSuggestions:       fixes,
		TopIssues:            TopIssues(issues, 5),
		ScoreBreakdown:       score.Breakdown,
		DegradedAgents:       degraded,
		WeightsRenormalized:  snap.Renormalized,
		GeneratedAt:          time.Now().UTC(),
	}
	transition(stateAssembled)
	return report, nil
}
