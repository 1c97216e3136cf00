package qa

import (
	"email-qa-backend/internal/agents"
	"email-qa-backend/internal/checks"
)

// Source identifies which pipeline stage reported an issue.
type Source string

const (
	SourceDeterministic Source = "deterministic"
	SourceCompliance    Source = "compliance"
	SourceTone          Source = "tone"
	SourceAccessibility Source = "accessibility"
)

// Severity levels, ordered critical > high > medium > low.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
}

// Issue is one normalized finding, the common schema every report uses.
type Issue struct {
	Source      Source   `json:"source"`
	RuleID      string   `json:"rule_id"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// normalizeSeverity coerces free-form agent severities into the fixed set.
// Unknown or missing values default to medium.
func normalizeSeverity(raw string) Severity {
	switch Severity(raw) {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return Severity(raw)
	}
	return SeverityMedium
}

// moreSevere reports whether a outranks b.
func moreSevere(a, b Severity) bool {
	return severityRank[a] < severityRank[b]
}

// sourceForKind maps an agent kind to an issue source.
func sourceForKind(kind agents.Kind) Source {
	switch kind {
	case agents.KindCompliance:
		return SourceCompliance
	case agents.KindTone:
		return SourceTone
	case agents.KindAccessibility:
		return SourceAccessibility
	}
	return Source(kind)
}

// normalizeAgentIssues converts one agent's raw findings into the common
// schema. Duplicate rule IDs within the agent collapse to a single issue
// carrying the most severe level seen.
func normalizeAgentIssues(result agents.Result) []Issue {
	source := sourceForKind(result.Kind)
	index := make(map[string]int, len(result.Issues))
	var out []Issue
	for _, raw := range result.Issues {
		issue := Issue{
			Source:      source,
			RuleID:      raw.Rule,
			Description: raw.Description,
			Severity:    normalizeSeverity(raw.Severity),
		}
		if at, ok := index[issue.RuleID]; ok {
			if moreSevere(issue.Severity, out[at].Severity) {
				out[at].Severity = issue.Severity
			}
			continue
		}
		index[issue.RuleID] = len(out)
		out = append(out, issue)
	}
	return out
}

// normalizeDeterministic converts failed structural checks into issues.
// Passing checks produce no issue; a structural failure is always high.
func normalizeDeterministic(results []checks.DeterministicResult) []Issue {
	var out []Issue
	for _, res := range results {
		if res.Status != checks.StatusFail {
			continue
		}
		out = append(out, Issue{
			Source:      SourceDeterministic,
			RuleID:      res.TestName,
			Description: res.Details,
			Severity:    SeverityHigh,
		})
	}
	return out
}
