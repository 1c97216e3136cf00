package agents

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	spamKeywords = []string{
		"urgent", "act now", "limited time", "free", "guarantee",
		"no obligation", "click here", "buy now", "instant", "miracle",
	}

	complexConnectors = []string{
		"however", "nevertheless", "moreover", "furthermore", "consequently",
		"therefore", "thus", "hence", "accordingly", "notwithstanding",
	}

	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	passiveVoice  = regexp.MustCompile(`(?i)\b(\w+ed|been|being)\b`)
	repeatedWord  = regexp.MustCompile(`(?i)\b(\w+)\s+(\w+)\b`)
)

const passiveVoiceLimit = 10

// ToneAgent checks copy clarity, tone, grammar, and spam indicators.
type ToneAgent struct{}

// NewToneAgent constructs a ToneAgent.
func NewToneAgent() *ToneAgent { return &ToneAgent{} }

func (a *ToneAgent) Kind() Kind { return KindTone }

// Analyze inspects subject line and body copy for tone problems.
func (a *ToneAgent) Analyze(ctx context.Context, input Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var issues []Issue
	text := extractText(input.HTMLContent)

	issues = append(issues, checkSubjectSpam(input.Metadata.Subject)...)
	issues = append(issues, checkComplexSentences(text)...)
	issues = append(issues, checkClarity(text)...)
	issues = append(issues, checkRepeatedWords(text)...)

	return Result{
		Kind:    KindTone,
		Issues:  issues,
		Summary: fmt.Sprintf("Found %d tone/clarity issues", len(issues)),
	}, nil
}

func checkSubjectSpam(subject string) []Issue {
	var issues []Issue
	lower := strings.ToLower(subject)

	var found []string
	for _, keyword := range spamKeywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	if len(found) > 0 {
		issues = append(issues, Issue{
			Rule:        "spam_indicators",
			Description: "Spam keywords detected in subject: " + strings.Join(found, ", "),
			Severity:    "high",
		})
	}

	letters := 0
	uppers := 0
	for _, r := range subject {
		if r >= 'a' && r <= 'z' {
			letters++
		}
		if r >= 'A' && r <= 'Z' {
			letters++
			uppers++
		}
	}
	if letters > 3 && uppers == letters {
		issues = append(issues, Issue{
			Rule:        "spam_indicators",
			Description: "Subject line is all caps",
			Severity:    "medium",
		})
	}
	return issues
}

func checkComplexSentences(text string) []Issue {
	var issues []Issue
	for _, sentence := range sentenceSplit.Split(text, -1) {
		lower := strings.ToLower(sentence)
		count := 0
		for _, connector := range complexConnectors {
			if strings.Contains(lower, connector) {
				count++
			}
		}
		if count > 2 {
			issues = append(issues, Issue{
				Rule:        "complex_sentences",
				Description: "Sentence contains too many complex connectors: " + truncate(strings.TrimSpace(sentence), 50),
				Severity:    "low",
			})
		}
	}
	return issues
}

func checkClarity(text string) []Issue {
	if len(passiveVoice.FindAllString(text, -1)) > passiveVoiceLimit {
		return []Issue{{
			Rule:        "clarity",
			Description: "Text contains excessive passive voice constructions",
			Severity:    "low",
		}}
	}
	return nil
}

func checkRepeatedWords(text string) []Issue {
	seen := make(map[string]struct{})
	for _, match := range repeatedWord.FindAllStringSubmatch(text, -1) {
		if strings.EqualFold(match[1], match[2]) {
			seen[strings.ToLower(match[1])] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	words := make([]string, 0, len(seen))
	for word := range seen {
		words = append(words, word)
	}
	sort.Strings(words)
	return []Issue{{
		Rule:        "grammar",
		Description: "Repeated words found: " + strings.Join(words, ", "),
		Severity:    "low",
	}}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
