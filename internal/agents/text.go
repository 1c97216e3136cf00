package agents

import (
	"strings"

	"golang.org/x/net/html"
)

// extractText flattens an email's HTML into visible text. Style and script
// contents are skipped. Parse failures degrade to the raw input with tags
// stripped crudely rather than erroring; agents must still produce findings
// for malformed markup.
func extractText(htmlContent string) string {
	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return collapseWhitespace(htmlContent)
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "style" || n.Data == "script") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return collapseWhitespace(b.String())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
