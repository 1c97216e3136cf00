package qa

import (
	"time"

	"email-qa-backend/internal/checks"
)

// AgentFindings is one judgment agent's normalized contribution to a report.
type AgentFindings struct {
	Issues   []Issue `json:"issues"`
	Summary  string  `json:"summary"`
	Degraded bool    `json:"degraded"`
}

// Report is the final artifact for one QA run. Immutable once assembled.
type Report struct {
	ID                   string                       `json:"id"`
	EmailID              string                       `json:"email_id"`
	OverallStatus        string                       `json:"overall_status"`
	RiskScore            int                          `json:"risk_score"`
	RiskLevel            string                       `json:"risk_level"`
	DeterministicResults []checks.DeterministicResult `json:"deterministic_results"`
	Compliance           AgentFindings                `json:"compliance"`
	Tone                 AgentFindings                `json:"tone"`
	Accessibility        AgentFindings                `json:"accessibility"`
	FixSuggestions       []FixSuggestion              `json:"fix_suggestions"`
	TopIssues            []Issue                      `json:"top_issues"`
	ScoreBreakdown       ScoreBreakdown               `json:"score_breakdown"`
	DegradedAgents       []string                     `json:"degraded_agents,omitempty"`
	WeightsRenormalized  bool                         `json:"weights_renormalized,omitempty"`
	GeneratedAt          time.Time                    `json:"generated_at"`
}
