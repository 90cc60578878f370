// Package recommend turns scoring gaps into ranked, paste-ready
// fixes. Every recommendation carries what to change, why, where, a
// copy-ready block, effort, and expected impact.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
	"github.com/eeatgrader/eeatgrader/internal/preset"
)

// fromMissingSignals maps every signal the rule checkers looked for
// and did not find to its remediation template. Signals the preset
// marks as required escalate to high impact with a points bonus.
func fromMissingSignals(score *model.EEATScore, p model.ContentPreset) []model.Recommendation {
	var recs []model.Recommendation
	cfg := preset.Get(p)
	isLegal := p.IsLegal()
	templates := signalTemplates(isLegal)

	dims := []struct {
		name string
		dim  model.DimensionScore
	}{
		{"Trust", score.Trust},
		{"Experience", score.Experience},
		{"Expertise", score.Expertise},
		{"Authoritativeness", score.Authoritativeness},
	}

	for _, d := range dims {
		for _, sig := range d.dim.Signals {
			if sig.Found {
				continue
			}
			tpl, ok := templates[sig.Signal]
			if !ok {
				continue
			}
			rec := buildRecommendation(tpl, sig.Signal, d.name)
			if cfg.RequiresSignal(sig.Signal) {
				rec.Impact = model.ImpactHigh
				rec.PointsPotential += 2.0
			}
			recs = append(recs, rec)
		}
	}
	return recs
}

func buildRecommendation(tpl template, signalName, dimension string) model.Recommendation {
	where := "Content body"
	lower := strings.ToLower(signalName)
	if strings.Contains(lower, "page") || strings.Contains(lower, "policy") {
		where = "Page-level"
	}
	return model.Recommendation{
		Title:           tpl.title,
		WhatToChange:    tpl.title,
		WhyItMatters:    tpl.why,
		Where:           where,
		CopyBlock:       tpl.copyBlock,
		Effort:          tpl.effort,
		Impact:          tpl.impact,
		Dimension:       dimension,
		PointsPotential: tpl.points,
		Scope:           tpl.scope,
	}
}

// claimExamples formats up to five claim texts as a quoted list
func claimExamples(claims []model.Claim) string {
	limit := len(claims)
	if limit > 5 {
		limit = 5
	}
	lines := make([]string, 0, limit)
	for _, c := range claims[:limit] {
		text := c.Text
		if runes := []rune(text); len(runes) > 120 {
			text = string(runes[:120])
		}
		lines = append(lines, fmt.Sprintf("- %q", text))
	}
	return strings.Join(lines, "\n")
}

func claimsByGrade(audit model.CitationAudit, grade model.EvidenceGrade) []model.Claim {
	var out []model.Claim
	for _, c := range audit.Claims {
		if c.Grade == grade {
			out = append(out, c)
		}
	}
	return out
}

// fromClaims turns citation-audit findings into fixes
func fromClaims(audit model.CitationAudit) []model.Recommendation {
	var recs []model.Recommendation

	if unsupported := claimsByGrade(audit, model.GradeUnsupported); len(unsupported) > 0 {
		recs = append(recs, model.Recommendation{
			Title:           fmt.Sprintf("Add sources for %d unsupported claim(s)", len(unsupported)),
			WhatToChange:    "Add credible citations near these claims",
			WhyItMatters:    "Unsupported claims weaken trust, especially on YMYL topics.",
			Where:           "Multiple sections",
			CopyBlock:       "Claims needing sources:\n" + claimExamples(unsupported),
			Effort:          model.EffortModerate,
			Impact:          model.ImpactHigh,
			Dimension:       "Trust",
			PointsPotential: math.Min(5.0, float64(len(unsupported))),
			Scope:           model.ScopePageLevel,
		})
	}

	if weak := claimsByGrade(audit, model.GradeWeaklySupported); len(weak) > 0 {
		sources := audit.LowTrustSources
		if len(sources) > 5 {
			sources = sources[:5]
		}
		recs = append(recs, model.Recommendation{
			Title:           fmt.Sprintf("Upgrade %d weak citation(s)", len(weak)),
			WhatToChange:    "Replace blog/forum sources with primary or institutional sources",
			WhyItMatters:    "Low-authority sources don't support sensitive claims.",
			Where:           "Multiple sections",
			CopyBlock:       "Replace sources from: " + strings.Join(sources, ", "),
			Effort:          model.EffortModerate,
			Impact:          model.ImpactMedium,
			Dimension:       "Trust",
			PointsPotential: math.Min(3.0, float64(len(weak))*0.5),
			Scope:           model.ScopePageLevel,
		})
	}

	if overbroad := claimsByGrade(audit, model.GradeNeedsQualification); len(overbroad) > 0 {
		recs = append(recs, model.Recommendation{
			Title:        fmt.Sprintf("Qualify %d overbroad claim(s)", len(overbroad)),
			WhatToChange: "Replace absolute language with scoped, conditional statements",
			WhyItMatters: "Overbroad claims reduce credibility and can mislead readers.",
			Where:        "Multiple sections",
			CopyBlock: "Claims to qualify:\n" + claimExamples(overbroad) +
				"\n\nReplace 'always' / 'never' / 'guaranteed' with conditional language.",
			Effort:          model.EffortEasy,
			Impact:          model.ImpactHigh,
			Dimension:       "Trust",
			PointsPotential: math.Min(4.0, float64(len(overbroad))),
			Scope:           model.ScopePageLevel,
		})
	}

	return recs
}

// fromCompliance turns each compliance flag into a targeted fix
func fromCompliance(flags []model.ComplianceFlag) []model.Recommendation {
	recs := make([]model.Recommendation, 0, len(flags))
	for _, flag := range flags {
		explanation := flag.Explanation
		if runes := []rune(explanation); len(runes) > 60 {
			explanation = string(runes[:60])
		}
		impact := model.ImpactMedium
		points := 1.5
		if flag.Severity == "high" {
			impact = model.ImpactHigh
			points = 3.0
		}
		recs = append(recs, model.Recommendation{
			Title:           fmt.Sprintf("Fix %s issue: %s", flag.Rule, explanation),
			WhatToChange:    flag.Explanation,
			WhyItMatters:    fmt.Sprintf("Violates %s. This can create misleading impressions and pose ethical/legal risk.", flag.Rule),
			Where:           flag.Location,
			CopyBlock:       flag.Fix,
			Effort:          model.EffortEasy,
			Impact:          impact,
			Dimension:       "Trust",
			PointsPotential: points,
			Scope:           model.ScopePageLevel,
		})
	}
	return recs
}

// legalExtras covers legal-specific fixes beyond the standard signals
func legalExtras(content *model.Content) []model.Recommendation {
	var recs []model.Recommendation

	if content.Dates.Reviewed == "" {
		recs = append(recs, model.Recommendation{
			Title:           "Add attorney review line",
			WhatToChange:    "Add a 'Reviewed by [Attorney]' line with date",
			WhyItMatters:    "Attorney review signals editorial oversight, a top trust signal for legal content.",
			Where:           "Below the title or at the end of the article",
			CopyBlock:       attorneyReviewBlock(),
			Effort:          model.EffortEasy,
			Impact:          model.ImpactHigh,
			Dimension:       "Trust",
			PointsPotential: 4.0,
			Scope:           model.ScopePageLevel,
		})
	}

	hasHowBuilt := false
	for _, s := range content.Sections {
		if strings.Contains(strings.ToLower(s.Text), "how we") {
			hasHowBuilt = true
			break
		}
	}
	if !hasHowBuilt {
		recs = append(recs, model.Recommendation{
			Title:           `Add "How we built this guide" section`,
			WhatToChange:    "Explain the research methodology",
			WhyItMatters:    "Transparency about research process builds trust with readers and raters.",
			Where:           "End of article, before sources",
			CopyBlock:       howWeBuiltBlock(),
			Effort:          model.EffortEasy,
			Impact:          model.ImpactMedium,
			Dimension:       "Experience",
			PointsPotential: 2.5,
			Scope:           model.ScopePageLevel,
		})
	}

	return recs
}

// Generate builds the full ranked recommendation list: high impact
// first, then larger point potential, with duplicate titles dropped
// keeping first occurrence
func Generate(score *model.EEATScore, content *model.Content, audit model.CitationAudit, p model.ContentPreset) []model.Recommendation {
	var recs []model.Recommendation

	recs = append(recs, fromMissingSignals(score, p)...)
	recs = append(recs, fromClaims(audit)...)
	recs = append(recs, fromCompliance(score.ComplianceFlags)...)
	if p.IsLegal() {
		recs = append(recs, legalExtras(content)...)
	}

	seen := make(map[string]bool)
	unique := make([]model.Recommendation, 0, len(recs))
	for _, r := range recs {
		if seen[r.Title] {
			continue
		}
		seen[r.Title] = true
		unique = append(unique, r)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].Impact.Rank() != unique[j].Impact.Rank() {
			return unique[i].Impact.Rank() < unique[j].Impact.Rank()
		}
		return unique[i].PointsPotential > unique[j].PointsPotential
	})

	return unique
}
