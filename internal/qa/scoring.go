package qa

import (
	"fmt"
	"math"

	"email-qa-backend/internal/checks"
	"email-qa-backend/internal/rules"
)

// Overall verdicts and risk levels.
const (
	StatusPass        = "pass"
	StatusFail        = "fail"
	StatusNeedsReview = "needs_review"

	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Policy holds the tunable scoring constants. The severity penalties and
// verdict thresholds are defaults, not immutable constants.
type Policy struct {
	Penalties     map[Severity]float64
	PassThreshold int
	FailThreshold int
}

// DefaultPolicy returns the standard penalty and threshold policy.
func DefaultPolicy() Policy {
	return Policy{
		Penalties: map[Severity]float64{
			SeverityCritical: 30,
			SeverityHigh:     20,
			SeverityMedium:   10,
			SeverityLow:      5,
		},
		PassThreshold: 85,
		FailThreshold: 60,
	}
}

// CategoryScore is one category's contribution to the final score.
// RawScore/RawMax are pre-weighting; Score/Max are scaled by the category's
// configured weight fraction.
type CategoryScore struct {
	Score    float64 `json:"score"`
	Max      float64 `json:"max"`
	RawScore float64 `json:"raw_score"`
	RawMax   float64 `json:"raw_max"`
}

// ScoreBreakdown maps each category to its contribution.
type ScoreBreakdown map[string]CategoryScore

// ScoreResult is the scoring engine's full output for one run.
type ScoreResult struct {
	Breakdown     ScoreBreakdown `json:"score_breakdown"`
	RiskScore     int            `json:"risk_score"`
	RiskLevel     string         `json:"risk_level"`
	OverallStatus string         `json:"overall_status"`
}

// Scorer computes risk scores from normalized run results.
type Scorer struct {
	Policy Policy
}

// NewScorer constructs a Scorer.
func NewScorer(policy Policy) *Scorer {
	if policy.Penalties == nil {
		policy = DefaultPolicy()
	}
	return &Scorer{Policy: policy}
}

// Score fuses deterministic results and normalized issues into a risk score
// using the weight snapshot captured for this run. Issues suppressed by a
// category's business override are excluded from the score but remain in the
// report. Scoring is pure: identical inputs always produce identical output.
func (s *Scorer) Score(deterministic []checks.DeterministicResult, issues []Issue, snap rules.Snapshot) (ScoreResult, error) {
	breakdown := ScoreBreakdown{
		rules.CategoryDeterministic: s.scoreDeterministic(deterministic, snap),
		rules.CategoryCompliance:    s.scoreJudgment(SourceCompliance, rules.CategoryCompliance, issues, snap),
		rules.CategoryTone:          s.scoreJudgment(SourceTone, rules.CategoryTone, issues, snap),
		rules.CategoryAccessibility: s.scoreJudgment(SourceAccessibility, rules.CategoryAccessibility, issues, snap),
	}

	total := 0.0
	for _, cat := range breakdown {
		total += cat.Score
	}
	if total < -1e-6 || total > rules.TotalWeight+1e-6 {
		return ScoreResult{}, fmt.Errorf("%w: total score %.4f outside [0, %v]", ErrScoringInvariant, total, rules.TotalWeight)
	}

	riskScore := int(math.Round(total))
	if riskScore < 0 {
		riskScore = 0
	}
	if riskScore > 100 {
		riskScore = 100
	}

	hasCritical := false
	for _, issue := range issues {
		if issue.Severity == SeverityCritical && !snap.Overridden(string(issue.Source), issue.RuleID) {
			hasCritical = true
			break
		}
	}

	return ScoreResult{
		Breakdown:     breakdown,
		RiskScore:     riskScore,
		RiskLevel:     s.riskLevel(riskScore),
		OverallStatus: s.overallStatus(riskScore, hasCritical),
	}, nil
}

// scoreDeterministic scores by pass ratio. An empty suite cannot be
// penalized and earns the category's full weight.
func (s *Scorer) scoreDeterministic(results []checks.DeterministicResult, snap rules.Snapshot) CategoryScore {
	weight := snap.Weight(rules.CategoryDeterministic)

	ratio := 1.0
	if len(results) > 0 {
		passed := 0
		for _, res := range results {
			if res.Status == checks.StatusPass {
				passed++
			}
		}
		ratio = float64(passed) / float64(len(results))
	}

	return CategoryScore{
		Score:    ratio * weight,
		Max:      weight,
		RawScore: ratio * 100,
		RawMax:   100,
	}
}

// scoreJudgment starts a category at 100 and subtracts a severity-weighted
// penalty per non-overridden issue, clamped at zero, then scales by weight.
func (s *Scorer) scoreJudgment(source Source, category string, issues []Issue, snap rules.Snapshot) CategoryScore {
	weight := snap.Weight(category)

	raw := 100.0
	for _, issue := range issues {
		if issue.Source != source {
			continue
		}
		if snap.Overridden(category, issue.RuleID) {
			continue
		}
		raw -= s.Policy.Penalties[issue.Severity]
	}
	if raw < 0 {
		raw = 0
	}

	return CategoryScore{
		Score:    raw / 100 * weight,
		Max:      weight,
		RawScore: raw,
		RawMax:   100,
	}
}

func (s *Scorer) riskLevel(score int) string {
	switch {
	case score >= s.Policy.PassThreshold:
		return RiskLow
	case score >= s.Policy.FailThreshold:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func (s *Scorer) overallStatus(score int, hasCritical bool) string {
	switch {
	case hasCritical || score < s.Policy.FailThreshold:
		return StatusFail
	case score >= s.Policy.PassThreshold:
		return StatusPass
	default:
		return StatusNeedsReview
	}
}
