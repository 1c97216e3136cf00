package checks

import (
	"context"
	"strings"
	"testing"

	"email-qa-backend/internal/emails"
)

func fullMeta() emails.Metadata {
	return emails.Metadata{
		Subject:      "Spring Sale",
		Preheader:    "Savings inside",
		TemplateName: "spring_sale_v2",
		Locale:       "en-US",
	}
}

func TestCheckAltText(t *testing.T) {
	if got := checkAltText(`<img src="a.png" alt="Logo">`, fullMeta()); got.Status != StatusPass {
		t.Fatalf("expected pass, got %+v", got)
	}
	got := checkAltText(`<img src="a.png">`, fullMeta())
	if got.Status != StatusFail {
		t.Fatalf("expected fail, got %+v", got)
	}
	if got.TestName != "alt_text" {
		t.Fatalf("unexpected test name %q", got.TestName)
	}
}

func TestCheckLinks(t *testing.T) {
	pass := `<a href="https://example.com">Shop</a><a href="mailto:help@example.com">Help</a>`
	if got := checkLinks(pass, fullMeta()); got.Status != StatusPass {
		t.Fatalf("expected pass, got %+v", got)
	}
	if got := checkLinks(`<a href="ftp://example.com">Files</a>`, fullMeta()); got.Status != StatusFail {
		t.Fatalf("expected fail for ftp link, got %+v", got)
	}
	if got := checkLinks(`<a href="">Empty</a>`, fullMeta()); got.Status != StatusFail {
		t.Fatalf("expected fail for empty href, got %+v", got)
	}
}

func TestCheckSubjectAndPreheader(t *testing.T) {
	meta := fullMeta()
	meta.Subject = ""
	if got := checkSubjectLine("<p>hi</p>", meta); got.Status != StatusFail {
		t.Fatalf("expected fail for missing subject, got %+v", got)
	}
	meta = fullMeta()
	meta.Preheader = "   "
	if got := checkPreheader("<p>hi</p>", meta); got.Status != StatusFail {
		t.Fatalf("expected fail for blank preheader, got %+v", got)
	}
	if got := checkPreheader("<p>hi</p>", fullMeta()); got.Status != StatusPass {
		t.Fatalf("expected pass, got %+v", got)
	}
}

func TestCheckTemplateMeta(t *testing.T) {
	meta := fullMeta()
	meta.Locale = ""
	got := checkTemplateMeta("<p>hi</p>", meta)
	if got.Status != StatusFail {
		t.Fatalf("expected fail for missing locale, got %+v", got)
	}
	if !strings.Contains(got.Details, "locale") {
		t.Fatalf("details should name the missing field, got %q", got.Details)
	}
}

func TestCheckWidthAndBackground(t *testing.T) {
	html := `<table width="600" bgcolor="#ffffff"><tr><td>hi</td></tr></table>`
	if got := checkWidth(html, fullMeta()); got.Status != StatusPass {
		t.Fatalf("expected width pass, got %+v", got)
	}
	if got := checkBackgroundColor(html, fullMeta()); got.Status != StatusPass {
		t.Fatalf("expected background pass, got %+v", got)
	}
	bare := `<p>hi</p>`
	if got := checkWidth(bare, fullMeta()); got.Status != StatusFail {
		t.Fatalf("expected width fail, got %+v", got)
	}
	if got := checkBackgroundColor(bare, fullMeta()); got.Status != StatusFail {
		t.Fatalf("expected background fail, got %+v", got)
	}
}

func TestCheckImageDimensions(t *testing.T) {
	if got := checkImageDimensions(`<img src="a.png" width="100" height="50" alt="a">`, fullMeta()); got.Status != StatusPass {
		t.Fatalf("expected pass, got %+v", got)
	}
	if got := checkImageDimensions(`<img src="a.png" width="100" alt="a">`, fullMeta()); got.Status != StatusFail {
		t.Fatalf("expected fail for missing height, got %+v", got)
	}
}

func TestCheckLongCopy(t *testing.T) {
	long := "<p>" + strings.Repeat("word ", 250) + "</p>"
	if got := checkLongCopy(long, fullMeta()); got.Status != StatusFail {
		t.Fatalf("expected fail for long copy, got %+v", got)
	}
	if got := checkLongCopy("<p>short and sweet</p>", fullMeta()); got.Status != StatusPass {
		t.Fatalf("expected pass, got %+v", got)
	}
}

func TestRunnerReportsEveryCheckInOrder(t *testing.T) {
	runner := DefaultRunner()
	results, err := runner.Run(context.Background(), `<img src="a.png">`, fullMeta())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	names := runner.Names()
	if len(results) != len(names) {
		t.Fatalf("expected %d results, got %d", len(names), len(results))
	}
	for i, res := range results {
		if res.TestName != names[i] {
			t.Fatalf("result %d: expected %q, got %q", i, names[i], res.TestName)
		}
		if res.Status != StatusPass && res.Status != StatusFail {
			t.Fatalf("result %d has invalid status %q", i, res.Status)
		}
	}
}

func TestRunnerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := DefaultRunner().Run(ctx, "<p>hi</p>", fullMeta()); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestChecksNeverPanicOnUnparsableInput(t *testing.T) {
	garbage := "\x00<not<html<<>"
	results, err := DefaultRunner().Run(context.Background(), garbage, emails.Metadata{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(DefaultRunner().Names()) {
		t.Fatalf("expected one result per check, got %d", len(results))
	}
}
