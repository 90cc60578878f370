// Package claims detects factual assertions in page text and grades
// each one against the citations found in the same section.
package claims

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// Patterns run against lowercased sentences, one family at a time;
// the first pattern to hit decides the family's match.
var statPatterns = compile(
	`\d+\s*%`,
	`\$[\d,]+`,
	`studies?\s+show`,
	`research\s+(shows?|indicates?|suggests?|found)`,
	`according\s+to`,
	`data\s+(shows?|indicates?|suggests?)`,
	`survey`,
	`on\s+average`,
	`approximately\s+\d`,
	`estimated\s+\d`,
)

var legalDirectivePatterns = compile(
	`statute\s+of\s+limitations?\s+is\s+\d`,
	`you\s+(must|have\s+to|are\s+required\s+to)\s+file`,
	`deadline\s+(is|of)\s+\d`,
	`within\s+\d+\s+(days?|months?|years?)`,
	`notice\s+requirement`,
	`you\s+(can|may)\s+sue`,
	`liable\s+for`,
	`entitled\s+to`,
	`burden\s+of\s+proof`,
	`comparative\s+fault`,
	`contributory\s+negligence`,
)

var medicalDirectivePatterns = compile(
	`you\s+should\s+(take|stop|avoid|consult)`,
	`recommended\s+dosage`,
	`side\s+effects?\s+include`,
	`(safe|unsafe)\s+to`,
)

var outcomePatterns = compile(
	`you\s+will\s+(get|receive|win|recover|obtain)`,
	`guaranteed?\s+`,
	`always\s+results?\s+in`,
	`average\s+settlement`,
	`typical\s+(recovery|verdict|settlement)`,
	`you\s+can\s+expect\s+to\s+(receive|recover)`,
)

var comparativePatterns = compile(
	`\b(best|top|most|leading|#\s*1|number\s*one|premier)\b`,
	`better\s+than`,
	`more\s+effective\s+than`,
	`outperforms?`,
	`superior\s+to`,
)

var proceduralPatterns = compile(
	`(first|then|next),?\s+you\s+(must|should|need\s+to|will)`,
	`step\s+\d`,
	`file\s+(a|the|your)\s+`,
	`serve\s+(the|a)\s+`,
	`appeal\s+(the|a|within)`,
)

var overbroadPatterns = compile(
	`\balways\b`, `\bnever\b`, `\beveryone\b`, `\bno one\b`,
	`\bguaranteed?\b`, `\b100\s*%\b`, `\ball\s+cases?\b`,
	`\bwithout\s+exception\b`,
)

// claimFamilies fixes the evaluation order so a sentence matching
// multiple families yields claims in a stable order
var claimFamilies = []struct {
	claimType model.ClaimType
	patterns  []*regexp.Regexp
}{
	{model.ClaimStatistic, statPatterns},
	{model.ClaimLegalDirective, legalDirectivePatterns},
	{model.ClaimMedicalDirective, medicalDirectivePatterns},
	{model.ClaimOutcome, outcomePatterns},
	{model.ClaimComparative, comparativePatterns},
	{model.ClaimProcedural, proceduralPatterns},
}

// trustedDomains are always graded as supported regardless of TLD
var trustedDomains = map[string]bool{
	"nih.gov":         true,
	"cdc.gov":         true,
	"who.int":         true,
	"law.cornell.edu": true,
	"uscourts.gov":    true,
}

var lowTrustIndicators = []string{"blog", "forum", "reddit", "quora", "medium.com", "wikipedia"}

const overbroadExplanation = "This claim uses absolute language and should be scoped with conditions or jurisdiction."

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

var sentenceEnd = regexp.MustCompile(`[.!?]\s+`)

// sentences splits text after terminal punctuation and drops fragments
// of 20 characters or fewer
func sentences(text string) []string {
	var out []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		s := strings.TrimSpace(text[start : loc[0]+1])
		if len(s) > 20 {
			out = append(out, s)
		}
		start = loc[1]
	}
	if tail := strings.TrimSpace(text[start:]); len(tail) > 20 {
		out = append(out, tail)
	}
	return out
}

// matchClaimTypes returns every claim family the sentence triggers
func matchClaimTypes(sentence string) []model.ClaimType {
	s := strings.ToLower(sentence)
	var hits []model.ClaimType
	for _, family := range claimFamilies {
		for _, pat := range family.patterns {
			if pat.MatchString(s) {
				hits = append(hits, family.claimType)
				break
			}
		}
	}
	return hits
}

func isOverbroad(sentence string) bool {
	s := strings.ToLower(sentence)
	for _, pat := range overbroadPatterns {
		if pat.MatchString(s) {
			return true
		}
	}
	return false
}

// gradeClaim judges a claim against the first link associated with
// its section
func gradeClaim(sectionLinks []model.Link) (model.EvidenceGrade, string, string) {
	if len(sectionLinks) == 0 {
		return model.GradeUnsupported, "", "No citation found near this claim."
	}

	best := sectionLinks[0]
	if best.IsGovernment || best.IsEducational {
		return model.GradeSupported, best.URL,
			fmt.Sprintf("Supported by authoritative source (%s).", best.Domain)
	}
	if trustedDomains[best.Domain] {
		return model.GradeSupported, best.URL,
			fmt.Sprintf("Supported by trusted source (%s).", best.Domain)
	}
	for _, indicator := range lowTrustIndicators {
		if strings.Contains(best.Domain, indicator) || strings.Contains(best.URL, indicator) {
			return model.GradeWeaklySupported, best.URL,
				fmt.Sprintf("Citation present but source may lack authority (%s).", best.Domain)
		}
	}
	return model.GradeSupported, best.URL,
		fmt.Sprintf("Citation present (%s).", best.Domain)
}

// sectionLinkIndex associates each outbound link with every section
// whose text contains its anchor text. Crude, but it keeps citations
// near the claims they plausibly support.
func sectionLinkIndex(content *model.Content) map[int][]model.Link {
	index := make(map[int][]model.Link)
	for _, link := range content.OutboundLinks {
		if link.AnchorText == "" {
			continue
		}
		anchor := strings.ToLower(link.AnchorText)
		for _, sec := range content.Sections {
			if strings.Contains(strings.ToLower(sec.Text), anchor) {
				index[sec.Index] = append(index[sec.Index], link)
			}
		}
	}
	return index
}

// Audit runs claim detection and evidence grading over all sections
func Audit(content *model.Content) model.CitationAudit {
	var all []model.Claim
	lowTrust := make(map[string]bool)

	index := sectionLinkIndex(content)

	for _, section := range content.Sections {
		nearby := index[section.Index]
		for _, sentence := range sentences(section.Text) {
			for _, claimType := range matchClaimTypes(sentence) {
				grade, citation, explanation := gradeClaim(nearby)

				if isOverbroad(sentence) {
					grade = model.GradeNeedsQualification
					explanation = overbroadExplanation
				}

				if grade == model.GradeWeaklySupported && citation != "" {
					lowTrust[citation] = true
				}

				all = append(all, model.Claim{
					Text:            sentence,
					Type:            claimType,
					SectionIndex:    section.Index,
					Grade:           grade,
					NearestCitation: citation,
					Explanation:     explanation,
				})
			}
		}
	}

	audit := model.CitationAudit{
		TotalClaims: len(all),
		Claims:      all,
	}
	for _, c := range all {
		switch c.Grade {
		case model.GradeSupported:
			audit.Supported++
		case model.GradeWeaklySupported:
			audit.WeaklySupported++
		case model.GradeUnsupported:
			audit.Unsupported++
		case model.GradeNeedsQualification:
			audit.NeedsQualification++
		}
	}

	sources := make([]string, 0, len(lowTrust))
	for s := range lowTrust {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	audit.LowTrustSources = sources

	return audit
}
