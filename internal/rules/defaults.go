package rules

// Defaults returns the rule configuration seeded at system initialization.
// Weights sum to TotalWeight.
func Defaults() []RuleConfig {
	return []RuleConfig{
		{
			ID:           CategoryDeterministic,
			Name:         "Deterministic structural checks",
			Weight:       40,
			Priority:     PriorityHigh,
			ErrorMessage: "Structural checks failed; review template markup and metadata.",
		},
		{
			ID:           CategoryCompliance,
			Name:         "Brand compliance",
			Weight:       25,
			Priority:     PriorityHigh,
			ErrorMessage: "Brand compliance issues found; review fonts, colors, and logo placement.",
		},
		{
			ID:           CategoryTone,
			Name:         "Tone and clarity",
			Weight:       15,
			Priority:     PriorityMedium,
			ErrorMessage: "Tone or clarity issues found; review copy.",
		},
		{
			ID:           CategoryAccessibility,
			Name:         "Accessibility",
			Weight:       20,
			Priority:     PriorityHigh,
			ErrorMessage: "Accessibility issues found; review ALT text, headings, and contrast.",
		},
	}
}

// DefaultFormulaDescription documents the scoring formula for the admin UI.
const DefaultFormulaDescription = "Each category contributes its weight fraction of the total score. " +
	"The deterministic category scores by pass ratio; judgment categories start at 100 and lose " +
	"30/20/10/5 points per critical/high/medium/low issue before weighting. " +
	"PASS >= 85 with no critical issues, FAIL < 60 or any critical issue, NEEDS REVIEW otherwise."
