package checks

import (
	"fmt"
	"strings"

	"email-qa-backend/internal/emails"
)

const longCopyLimit = 200

var validLinkPrefixes = []string{"http://", "https://", "mailto:", "#"}

func checkAltText(htmlContent string, _ emails.Metadata) DeterministicResult {
	const name = "alt_text"
	root, err := parseHTML(htmlContent)
	if err != nil {
		return fail(name, "could not parse HTML: "+err.Error())
	}
	images := collectElements(root, "img")
	if len(images) == 0 {
		return pass(name, "no images found")
	}
	missing := 0
	for _, img := range images {
		alt, ok := attrValue(img, "alt")
		if !ok || strings.TrimSpace(alt) == "" {
			missing++
		}
	}
	if missing > 0 {
		return fail(name, fmt.Sprintf("%d of %d images missing ALT text", missing, len(images)))
	}
	return pass(name, fmt.Sprintf("ALT text present on all %d images", len(images)))
}

func checkLinks(htmlContent string, _ emails.Metadata) DeterministicResult {
	const name = "links"
	root, err := parseHTML(htmlContent)
	if err != nil {
		return fail(name, "could not parse HTML: "+err.Error())
	}
	var malformed []string
	total := 0
	for _, anchor := range collectElements(root, "a") {
		href, ok := attrValue(anchor, "href")
		if !ok {
			continue
		}
		total++
		if !hasValidPrefix(href) {
			malformed = append(malformed, href)
		}
	}
	if total == 0 {
		return pass(name, "no links found")
	}
	if len(malformed) > 0 {
		return fail(name, "malformed links: "+strings.Join(malformed, ", "))
	}
	return pass(name, fmt.Sprintf("all %d links well-formed", total))
}

func hasValidPrefix(href string) bool {
	for _, prefix := range validLinkPrefixes {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}

func checkSubjectLine(_ string, meta emails.Metadata) DeterministicResult {
	const name = "subject_line"
	if strings.TrimSpace(meta.Subject) == "" {
		return fail(name, "missing subject line")
	}
	return pass(name, "subject line present: "+meta.Subject)
}

func checkPreheader(_ string, meta emails.Metadata) DeterministicResult {
	const name = "preheader"
	if strings.TrimSpace(meta.Preheader) == "" {
		return fail(name, "missing preheader")
	}
	return pass(name, "preheader present")
}

func checkTemplateMeta(_ string, meta emails.Metadata) DeterministicResult {
	const name = "template_meta"
	var missing []string
	if strings.TrimSpace(meta.TemplateName) == "" {
		missing = append(missing, "template_name")
	}
	if strings.TrimSpace(meta.Locale) == "" {
		missing = append(missing, "locale")
	}
	if len(missing) > 0 {
		return fail(name, "missing metadata fields: "+strings.Join(missing, ", "))
	}
	return pass(name, "template metadata complete")
}

func checkWidth(htmlContent string, _ emails.Metadata) DeterministicResult {
	const name = "width"
	if !strings.Contains(htmlContent, "width=") && !strings.Contains(htmlContent, "width:") {
		return fail(name, "no width specification found")
	}
	return pass(name, "width specification found")
}

func checkBackgroundColor(htmlContent string, _ emails.Metadata) DeterministicResult {
	const name = "background_color"
	if !strings.Contains(htmlContent, "background-color:") && !strings.Contains(htmlContent, "bgcolor=") {
		return fail(name, "no background color declarations found")
	}
	return pass(name, "background color declarations found")
}

func checkImageDimensions(htmlContent string, _ emails.Metadata) DeterministicResult {
	const name = "image_dimensions"
	root, err := parseHTML(htmlContent)
	if err != nil {
		return fail(name, "could not parse HTML: "+err.Error())
	}
	images := collectElements(root, "img")
	if len(images) == 0 {
		return pass(name, "no images found")
	}
	missing := 0
	for _, img := range images {
		_, hasWidth := attrValue(img, "width")
		_, hasHeight := attrValue(img, "height")
		if !hasWidth || !hasHeight {
			missing++
		}
	}
	if missing > 0 {
		return fail(name, fmt.Sprintf("%d of %d images missing dimensions", missing, len(images)))
	}
	return pass(name, "image dimensions present")
}

func checkLongCopy(htmlContent string, _ emails.Metadata) DeterministicResult {
	const name = "long_copy"
	root, err := parseHTML(htmlContent)
	if err != nil {
		return fail(name, "could not parse HTML: "+err.Error())
	}
	for _, text := range collectText(root) {
		if len(text) > longCopyLimit {
			return fail(name, fmt.Sprintf("text block of %d chars exceeds %d char limit", len(text), longCopyLimit))
		}
	}
	return pass(name, "no excessively long text blocks")
}
