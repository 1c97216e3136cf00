package agents

import (
	"context"
	"strings"
	"testing"
)

const compliantEmail = `
<html>
<body style="font-family: Arial; padding: 24px;">
<header class="header"><img src="brandlogo.png" alt="Brand"></header>
<a href="https://example.com" style="background-color: #0085FF;">Shop now</a>
<footer class="footer">Unsubscribe</footer>
</body>
</html>`

func TestComplianceAgentCleanEmail(t *testing.T) {
	agent := NewComplianceAgent(DefaultBrandRules())

	result, err := agent.Analyze(context.Background(), Input{HTMLContent: compliantEmail})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Kind != KindCompliance {
		t.Fatalf("unexpected kind %q", result.Kind)
	}
	if len(result.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", result.Issues)
	}
}

func TestComplianceAgentFlagsViolations(t *testing.T) {
	agent := NewComplianceAgent(DefaultBrandRules())

	result, err := agent.Analyze(context.Background(), Input{
		HTMLContent: `<html><body style="font-family: Comic Sans;"><p>hello</p></body></html>`,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	rules := make(map[string]bool)
	for _, issue := range result.Issues {
		rules[issue.Rule] = true
	}
	for _, want := range []string{"font_compliance", "cta_color_compliance", "spacing_compliance", "logo_placement", "header_consistency", "footer_consistency"} {
		if !rules[want] {
			t.Errorf("expected issue for %q, got %+v", want, result.Issues)
		}
	}
	if !strings.Contains(result.Summary, "compliance issues") {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
}

func TestNewComplianceAgentFillsDefaults(t *testing.T) {
	agent := NewComplianceAgent(BrandRules{FontFamily: "Helvetica"})
	if agent.Rules.FontFamily != "Helvetica" {
		t.Fatalf("explicit value overwritten: %q", agent.Rules.FontFamily)
	}
	if agent.Rules.CTAColor != DefaultBrandRules().CTAColor {
		t.Fatalf("missing value not defaulted: %q", agent.Rules.CTAColor)
	}
}
