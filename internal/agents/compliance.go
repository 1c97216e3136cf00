package agents

import (
	"context"
	"fmt"
	"strings"
)

// BrandRules holds the brand guideline values the compliance agent enforces.
type BrandRules struct {
	FontFamily    string
	CTAColor      string
	HeaderLogo    string
	TopPadding    string
	BottomPadding string
}

// DefaultBrandRules returns the stock brand guideline set.
func DefaultBrandRules() BrandRules {
	return BrandRules{
		FontFamily:    "Arial",
		CTAColor:      "#0085FF",
		HeaderLogo:    "brandlogo.png",
		TopPadding:    "24px",
		BottomPadding: "24px",
	}
}

// ComplianceAgent checks brand compliance: fonts, CTA colors, spacing, logo
// placement, and header/footer consistency.
type ComplianceAgent struct {
	Rules BrandRules
}

// NewComplianceAgent constructs a ComplianceAgent with the given rules,
// falling back to defaults for empty fields.
func NewComplianceAgent(rules BrandRules) *ComplianceAgent {
	defaults := DefaultBrandRules()
	if rules.FontFamily == "" {
		rules.FontFamily = defaults.FontFamily
	}
	if rules.CTAColor == "" {
		rules.CTAColor = defaults.CTAColor
	}
	if rules.HeaderLogo == "" {
		rules.HeaderLogo = defaults.HeaderLogo
	}
	if rules.TopPadding == "" {
		rules.TopPadding = defaults.TopPadding
	}
	if rules.BottomPadding == "" {
		rules.BottomPadding = defaults.BottomPadding
	}
	return &ComplianceAgent{Rules: rules}
}

func (a *ComplianceAgent) Kind() Kind { return KindCompliance }

// Analyze inspects the email against brand guidelines.
func (a *ComplianceAgent) Analyze(ctx context.Context, input Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var issues []Issue
	content := input.HTMLContent
	lower := strings.ToLower(content)

	if !strings.Contains(lower, strings.ToLower("font-family: "+a.Rules.FontFamily)) {
		issues = append(issues, Issue{
			Rule:        "font_compliance",
			Description: "Font does not match brand guidelines. Expected: " + a.Rules.FontFamily,
			Severity:    "medium",
		})
	}
	if !strings.Contains(lower, strings.ToLower(a.Rules.CTAColor)) {
		issues = append(issues, Issue{
			Rule:        "cta_color_compliance",
			Description: "CTA button color does not match brand guidelines. Expected: " + a.Rules.CTAColor,
			Severity:    "medium",
		})
	}
	if !strings.Contains(content, a.Rules.TopPadding) {
		issues = append(issues, Issue{
			Rule:        "spacing_compliance",
			Description: "Top padding does not match brand guidelines. Expected: " + a.Rules.TopPadding,
			Severity:    "low",
		})
	} else if !strings.Contains(content, a.Rules.BottomPadding) {
		issues = append(issues, Issue{
			Rule:        "spacing_compliance",
			Description: "Bottom padding does not match brand guidelines. Expected: " + a.Rules.BottomPadding,
			Severity:    "low",
		})
	}
	if !strings.Contains(content, a.Rules.HeaderLogo) {
		issues = append(issues, Issue{
			Rule:        "logo_placement",
			Description: "Brand logo not found. Expected: " + a.Rules.HeaderLogo,
			Severity:    "medium",
		})
	}
	if !strings.Contains(lower, "<header") && !strings.Contains(lower, `class="header"`) && !strings.Contains(lower, `class='header'`) {
		issues = append(issues, Issue{
			Rule:        "header_consistency",
			Description: "Header section not found or inconsistent",
			Severity:    "low",
		})
	}
	if !strings.Contains(lower, "<footer") && !strings.Contains(lower, `class="footer"`) && !strings.Contains(lower, `class='footer'`) {
		issues = append(issues, Issue{
			Rule:        "footer_consistency",
			Description: "Footer section not found or inconsistent",
			Severity:    "low",
		})
	}

	return Result{
		Kind:    KindCompliance,
		Issues:  issues,
		Summary: fmt.Sprintf("Found %d compliance issues", len(issues)),
	}, nil
}
