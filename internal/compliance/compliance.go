// Package compliance scans legal content for ABA Model Rule 7.1 risk
// patterns: language that creates misleading impressions about legal
// services, outcomes, or qualifications.
package compliance

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// rule71Pattern pairs a risk pattern with its severity, rule
// reference, and remediation text
type rule71Pattern struct {
	re          *regexp.Regexp
	severity    string
	rule        string
	explanation string
	fix         string
}

// rule71Patterns is evaluated in fixed order so scan output is stable
var rule71Patterns = []rule71Pattern{
	{
		re:       regexp.MustCompile(`(?i)\b(we\s+)?guarantee[ds]?\b`),
		severity: "high",
		rule:     "Rule 7.1(a)",
		explanation: "Guarantee language about legal outcomes is misleading. " +
			"No attorney can guarantee results.",
		fix: `Remove "guarantee" or replace with "we work to achieve the best possible outcome."`,
	},
	{
		re:       regexp.MustCompile(`(?i)\b(best|top|#\s*1|number\s*one|premier|leading)\s+(lawyer|attorney|firm|law\s*firm)\b`),
		severity: "high",
		rule:     "Rule 7.1(a)",
		explanation: "Superlative claims about legal services require substantiation " +
			"and can mislead potential clients.",
		fix: `Add substantiation (e.g., award name, ranking source) or soften to "experienced" / "dedicated."`,
	},
	{
		re:       regexp.MustCompile(`(?i)\b(expert|specialist)\s+(in|at|on)\b`),
		severity: "medium",
		rule:     "Rule 7.1(a)",
		explanation: `"Expert" or "specialist" claims may be misleading unless ` +
			"supported by board certification or recognized specialization.",
		fix: `Replace with specific credentials or use "experienced in" / "focused on" instead.`,
	},
	{
		re:       regexp.MustCompile(`(?i)(\$[\d,]+(?:\.\d+)?\s*(million|thousand|settlement|verdict))`),
		severity: "high",
		rule:     "Rule 7.1(b)",
		explanation: "Specific dollar amounts for case results can mislead if presented " +
			"without a disclaimer that results vary.",
		fix: `Add: "Past results do not guarantee future outcomes. Every case is different."`,
	},
	{
		re:       regexp.MustCompile(`(?i)\b(no\s+fee|free\s+consult|free\s+case\s+review|no\s+cost|pay\s+nothing)\b`),
		severity: "medium",
		rule:     "Rule 7.1(b)",
		explanation: `"No fee" claims need conditions stated: ` +
			"contingency basis, costs vs. fees, what's actually free.",
		fix: `Add conditions: "No attorney fee unless we recover compensation. Client may be responsible for case costs."`,
	},
	{
		re:       regexp.MustCompile(`(?i)\byou\s+(will|are\s+going\s+to)\s+(win|recover|get|receive|obtain)\b`),
		severity: "high",
		rule:     "Rule 7.1(a)",
		explanation: "Promising specific outcomes is misleading. " +
			"Outcomes depend on facts and law.",
		fix: `Replace with "you may be entitled to" or "we will pursue the maximum recovery available."`,
	},
	{
		re:          regexp.MustCompile(`(?i)\b(always|never)\s+(win|lose|recover|get|result|succeed)\b`),
		severity:    "high",
		rule:        "Rule 7.1(a)",
		explanation: "Absolute outcome language is inherently misleading in legal contexts.",
		fix:         "Replace with conditional language that acknowledges case-specific factors.",
	},
	{
		re:       regexp.MustCompile(`(?i)\b(client\s+review|testimonial|what\s+our\s+clients\s+say)\b`),
		severity: "medium",
		rule:     "Rule 7.1(b)",
		explanation: "Client testimonials may create unjustified expectations about results. " +
			"Many jurisdictions require disclaimers.",
		fix: `Add: "Client testimonials reflect individual experiences and do not guarantee similar outcomes."`,
	},
	{
		re:       regexp.MustCompile(`(?i)\b(connections?\s+(?:to|with)\s+(?:the\s+)?(?:court|judge)|inside\s+knowledge)\b`),
		severity: "high",
		rule:     "Rule 7.1(a) / Rule 8.4",
		explanation: "Implying special influence with courts or judges is misleading " +
			"and may violate ethics rules.",
		fix: "Remove any language implying special access or influence.",
	},
}

// Scan checks all content sections against the Rule 7.1 pattern table.
// Flags are deduplicated on the first 80 characters of their context
// snippet, keeping first occurrences.
func Scan(content *model.Content) []model.ComplianceFlag {
	var flags []model.ComplianceFlag

	for _, section := range content.Sections {
		text := section.Text
		heading := section.Heading
		if heading == "" {
			heading = fmt.Sprintf("Section %d", section.Index+1)
		}

		for _, pat := range rule71Patterns {
			for _, loc := range pat.re.FindAllStringIndex(text, -1) {
				start := loc[0] - 50
				if start < 0 {
					start = 0
				}
				for start < loc[0] && !utf8.RuneStart(text[start]) {
					start++
				}
				end := loc[1] + 50
				if end > len(text) {
					end = len(text)
				}
				for end < len(text) && !utf8.RuneStart(text[end]) {
					end++
				}
				context := strings.TrimSpace("..." + text[start:end] + "...")

				flags = append(flags, model.ComplianceFlag{
					Rule:        pat.rule,
					Severity:    pat.severity,
					Text:        context,
					Location:    heading,
					Explanation: pat.explanation,
					Fix:         pat.fix,
				})
			}
		}
	}

	seen := make(map[string]bool)
	unique := make([]model.ComplianceFlag, 0, len(flags))
	for _, f := range flags {
		key := f.Text
		if runes := []rune(key); len(runes) > 80 {
			key = string(runes[:80])
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, f)
	}

	return unique
}
