package agents

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const (
	maxAltTextLength  = 125
	maxLinkTextLength = 80
)

var (
	placeholderAltText = map[string]struct{}{
		"image": {}, "photo": {}, "picture": {}, "graphic": {},
	}
	genericLinkText = map[string]struct{}{
		"click here": {}, "read more": {}, "link": {}, "here": {},
	}
	textColorStyle = regexp.MustCompile(`(?i)[^-]color\s*:\s*#[0-9a-f]{3,6}`)
	bgColorStyle   = regexp.MustCompile(`(?i)background(-color)?\s*:\s*#[0-9a-f]{3,6}`)
)

// AccessibilityAgent checks ALT text quality, semantic structure, link text
// clarity, and a color contrast heuristic.
type AccessibilityAgent struct{}

// NewAccessibilityAgent constructs an AccessibilityAgent.
func NewAccessibilityAgent() *AccessibilityAgent { return &AccessibilityAgent{} }

func (a *AccessibilityAgent) Kind() Kind { return KindAccessibility }

// Analyze inspects the email for accessibility issues.
func (a *AccessibilityAgent) Analyze(ctx context.Context, input Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	root, err := html.Parse(strings.NewReader(input.HTMLContent))
	if err != nil {
		return Result{}, fmt.Errorf("parse html: %w", err)
	}

	var issues []Issue
	issues = append(issues, checkAltTextQuality(root)...)
	issues = append(issues, checkSemanticStructure(root)...)
	issues = append(issues, checkLinkTextClarity(root)...)
	issues = append(issues, checkColorContrast(input.HTMLContent)...)

	return Result{
		Kind:    KindAccessibility,
		Issues:  issues,
		Summary: fmt.Sprintf("Found %d accessibility issues", len(issues)),
	}, nil
}

func checkAltTextQuality(root *html.Node) []Issue {
	var issues []Issue
	for _, img := range elementsByTag(root, "img") {
		alt := strings.TrimSpace(attr(img, "alt"))
		switch {
		case alt == "":
			issues = append(issues, Issue{
				Rule:        "alt_text_quality",
				Description: "Image missing descriptive ALT text",
				Severity:    "high",
			})
		case isPlaceholderAlt(alt):
			issues = append(issues, Issue{
				Rule:        "alt_text_quality",
				Description: "Image has non-descriptive ALT text: '" + alt + "'",
				Severity:    "medium",
			})
		case len(alt) > maxAltTextLength:
			issues = append(issues, Issue{
				Rule:        "alt_text_quality",
				Description: fmt.Sprintf("ALT text is too long (%d chars): '%s'", len(alt), truncate(alt, 50)),
				Severity:    "low",
			})
		}
	}
	return issues
}

func checkSemanticStructure(root *html.Node) []Issue {
	var issues []Issue

	headings := 0
	h1Count := 0
	for level := 1; level <= 6; level++ {
		tags := elementsByTag(root, fmt.Sprintf("h%d", level))
		headings += len(tags)
		if level == 1 {
			h1Count = len(tags)
		}
	}
	switch {
	case headings == 0:
		issues = append(issues, Issue{
			Rule:        "semantic_html",
			Description: "No heading elements found",
			Severity:    "medium",
		})
	case h1Count == 0:
		issues = append(issues, Issue{
			Rule:        "semantic_html",
			Description: "Missing main heading (h1)",
			Severity:    "medium",
		})
	case h1Count > 1:
		issues = append(issues, Issue{
			Rule:        "semantic_html",
			Description: "Multiple h1 headings found",
			Severity:    "low",
		})
	}

	listContainers := len(elementsByTag(root, "ul")) + len(elementsByTag(root, "ol"))
	if len(elementsByTag(root, "li")) > 0 && listContainers == 0 {
		issues = append(issues, Issue{
			Rule:        "semantic_html",
			Description: "List items found without proper list container",
			Severity:    "low",
		})
	}

	return issues
}

func checkLinkTextClarity(root *html.Node) []Issue {
	var issues []Issue
	for _, anchor := range elementsByTag(root, "a") {
		if attr(anchor, "href") == "" {
			continue
		}
		text := strings.TrimSpace(nodeText(anchor))
		switch {
		case text == "":
			issues = append(issues, Issue{
				Rule:        "link_text_clarity",
				Description: "Link with no text content",
				Severity:    "high",
			})
		case isGenericLinkText(text):
			issues = append(issues, Issue{
				Rule:        "link_text_clarity",
				Description: "Non-descriptive link text: '" + text + "'",
				Severity:    "medium",
			})
		case len(text) > maxLinkTextLength:
			issues = append(issues, Issue{
				Rule:        "link_text_clarity",
				Description: fmt.Sprintf("Link text is too long (%d chars): '%s'", len(text), truncate(text, 50)),
				Severity:    "low",
			})
		}
	}
	return issues
}

func checkColorContrast(htmlContent string) []Issue {
	if textColorStyle.MatchString(htmlContent) && !bgColorStyle.MatchString(htmlContent) {
		return []Issue{{
			Rule:        "color_contrast",
			Description: "Text color specified without background color - contrast cannot be verified",
			Severity:    "low",
		}}
	}
	return nil
}

func isPlaceholderAlt(alt string) bool {
	_, ok := placeholderAltText[strings.ToLower(alt)]
	return ok
}

func isGenericLinkText(text string) bool {
	_, ok := genericLinkText[strings.ToLower(text)]
	return ok
}

func elementsByTag(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return collapseWhitespace(b.String())
}
