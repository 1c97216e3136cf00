package qa

import "sort"

// FixSuggestion is one remediation recommendation.
type FixSuggestion struct {
	Type        Source `json:"type"`
	Issue       string `json:"issue"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
	Priority    string `json:"priority"`

	severity Severity
}

// fixTemplates maps rule IDs to canned remediation text. Rules without a
// template fall back to a generic suggestion; no issue is ever dropped.
var fixTemplates = map[string]string{
	"alt_text":             "Add descriptive ALT text to every image",
	"links":                "Fix malformed or unsupported link targets",
	"subject_line":         "Add a compelling subject line",
	"preheader":            "Add a preheader text",
	"template_meta":        "Add missing template metadata fields",
	"width":                "Specify width attributes for email elements",
	"background_color":     "Define background colors for all sections",
	"image_dimensions":     "Add width and height attributes to every image",
	"long_copy":            "Break up long text block into shorter paragraphs",
	"font_compliance":      "Update font family to the brand standard",
	"cta_color_compliance": "Update CTA button color to the brand standard",
	"spacing_compliance":   "Adjust spacing to brand guidelines",
	"logo_placement":       "Add the brand logo to the header",
	"header_consistency":   "Ensure consistent header structure",
	"footer_consistency":   "Ensure consistent footer structure",
	"spam_indicators":      "Remove or rephrase spammy language",
	"complex_sentences":    "Simplify complex sentence structure",
	"clarity":              "Rewrite passive voice to active voice",
	"grammar":              "Fix repeated or incorrect words",
	"alt_text_quality":     "Improve ALT text descriptiveness",
	"semantic_html":        "Add proper heading structure",
	"link_text_clarity":    "Make link text more descriptive",
	"color_contrast":       "Ensure sufficient color contrast for readability",
}

// categoryRank is the fixed tie-break order for equal severities.
var categoryRank = map[Source]int{
	SourceAccessibility: 0,
	SourceCompliance:    1,
	SourceTone:          2,
	SourceDeterministic: 3,
}

// SuggestFixes converts the merged issue list into a prioritized,
// deduplicated remediation list. Duplicates collapse on (type, issue).
func SuggestFixes(issues []Issue) []FixSuggestion {
	type key struct {
		source Source
		rule   string
	}
	seen := make(map[key]int, len(issues))
	var out []FixSuggestion

	for _, issue := range issues {
		k := key{source: issue.Source, rule: issue.RuleID}
		if at, ok := seen[k]; ok {
			if moreSevere(issue.Severity, out[at].severity) {
				out[at].severity = issue.Severity
				out[at].Priority = priorityFor(issue.Severity)
			}
			continue
		}

		suggestion, ok := fixTemplates[issue.RuleID]
		if !ok {
			suggestion = "Review and correct: " + issue.Description
		}
		seen[k] = len(out)
		out = append(out, FixSuggestion{
			Type:        issue.Source,
			Issue:       issue.RuleID,
			Description: issue.Description,
			Suggestion:  suggestion,
			Priority:    priorityFor(issue.Severity),
			severity:    issue.Severity,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].severity != out[j].severity {
			return moreSevere(out[i].severity, out[j].severity)
		}
		return categoryRank[out[i].Type] < categoryRank[out[j].Type]
	})
	return out
}

// TopIssues ranks issues by severity then category and returns at most n.
func TopIssues(issues []Issue, n int) []Issue {
	ranked := make([]Issue, len(issues))
	copy(ranked, issues)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Severity != ranked[j].Severity {
			return moreSevere(ranked[i].Severity, ranked[j].Severity)
		}
		return categoryRank[ranked[i].Source] < categoryRank[ranked[j].Source]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// priorityFor collapses the four severities into the three fix priorities.
func priorityFor(severity Severity) string {
	switch severity {
	case SeverityCritical, SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}
