package rules

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// expertiseChecks is the Expertise battery in fixed order
var expertiseChecks = []CheckFunc{
	checkTerminology,
	checkScopeLimits,
	checkDepth,
	checkInternalConsistency,
}

// domainTerms are specialist vocabulary across the three YMYL verticals,
// in fixed order so quotes are deterministic
var domainTerms = []string{
	// legal
	"statute", "regulation", "jurisdiction", "negligence", "liability",
	"comparative fault", "damages", "burden of proof", "discovery",
	"motion", "pleading", "tort", "breach", "fiduciary",
	// medical
	"diagnosis", "prognosis", "contraindication", "etiology",
	"pathology", "protocol", "clinical",
	// finance
	"amortization", "fiduciary", "portfolio", "diversification",
	"yield", "liquidity", "collateral",
}

var scopePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bthis\s+(applies|is\s+for|covers)\b`),
	regexp.MustCompile(`(?i)\b(consult|talk\s+to|speak\s+with)\s+(a|an|your)\s+(attorney|lawyer|doctor|advisor|professional)\b`),
	regexp.MustCompile(`(?i)\b(may\s+not\s+apply|varies\s+by|depends\s+on)\b`),
	regexp.MustCompile(`(?i)\b(in\s+\w+\s+state|under\s+\w+\s+law)\b`),
	regexp.MustCompile(`(?i)\b(who\s+this\s+is\s+for|who\s+should)\b`),
}

func checkTerminology(c *model.Content) model.SignalEvidence {
	text := strings.ToLower(c.PlainText)
	var hits []string
	for _, term := range domainTerms {
		if strings.Contains(text, term) {
			hits = append(hits, term)
		}
	}
	quoted := hits
	if len(quoted) > 8 {
		quoted = quoted[:8]
	}
	return signal(
		"Domain-specific terminology",
		len(hits) >= 2,
		math.Min(4.0, float64(len(hits))*0.5),
		strings.Join(quoted, ", "), "",
		"Correct specialist terminology signals subject expertise.",
	)
}

func checkScopeLimits(c *model.Content) model.SignalEvidence {
	text := c.PlainText
	hits := 0
	sample := ""
	for _, pat := range scopePatterns {
		if loc := pat.FindStringIndex(text); loc != nil {
			hits++
			if sample == "" {
				sample = excerpt(text, loc[0], loc[1], 30, 50)
			}
		}
	}
	return signal(
		"Proper scoping and pro referrals",
		hits >= 1,
		math.Min(4.0, float64(hits)),
		sample, "",
		"Scoping advice to the right audience and referring to professionals when appropriate signals expertise.",
	)
}

func checkDepth(c *model.Content) model.SignalEvidence {
	wc := c.WordCount
	sec := len(c.Sections)
	goodDepth := wc >= 800 && sec >= 3
	greatDepth := wc >= 1500 && sec >= 5

	pts := 0.0
	switch {
	case greatDepth:
		pts = 2.0
	case goodDepth:
		pts = 1.0
	}
	return signal(
		"Content depth (word count + structure)",
		goodDepth,
		pts,
		fmt.Sprintf("%d words, %d sections", wc, sec), "",
		"Sufficient depth with clear structure shows topical command.",
	)
}

// checkInternalConsistency always passes; contradiction detection is
// deferred to the advisory rater
func checkInternalConsistency(c *model.Content) model.SignalEvidence {
	return signal(
		"Internal consistency",
		true,
		1.5,
		"", "",
		"No obvious contradictions detected (deep check deferred to AI rater).",
	)
}
