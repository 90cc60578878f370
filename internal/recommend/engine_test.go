package recommend

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

func missing(name string) model.SignalEvidence {
	return model.SignalEvidence{Signal: name, Found: false}
}

func found(name string) model.SignalEvidence {
	return model.SignalEvidence{Signal: name, Found: true, Points: 2.0}
}

func scoreWith(trust ...model.SignalEvidence) *model.EEATScore {
	return &model.EEATScore{
		Trust: model.DimensionScore{Name: "Trust", Signals: trust, MaxScore: 25},
	}
}

func TestGenerate_SkipsFoundSignals(t *testing.T) {
	score := scoreWith(found("About page linked"), missing("Privacy policy linked"))
	recs := Generate(score, &model.Content{}, model.CitationAudit{}, model.PresetGeneral)

	for _, r := range recs {
		if r.Title == "Add or link an About page" {
			t.Error("found signal should not produce a recommendation")
		}
	}
	var sawPrivacy bool
	for _, r := range recs {
		if r.Title == "Add a privacy policy link" {
			sawPrivacy = true
		}
	}
	if !sawPrivacy {
		t.Error("missing privacy policy signal should produce a recommendation")
	}
}

func TestGenerate_RequiredSignalEscalates(t *testing.T) {
	// Disclaimer is required for legal practice pages: easy/high/4.0
	// base, and requirement adds 2.0 and pins impact high
	score := scoreWith(missing("Disclaimer / legal notice present"))

	legal := Generate(score, &model.Content{Dates: model.Dates{Reviewed: "2024-01-01"}},
		model.CitationAudit{}, model.PresetLegalPractice)
	general := Generate(score, &model.Content{}, model.CitationAudit{}, model.PresetGeneral)

	find := func(recs []model.Recommendation) *model.Recommendation {
		for i := range recs {
			if recs[i].Title == "Add a legal disclaimer" {
				return &recs[i]
			}
		}
		return nil
	}

	l, g := find(legal), find(general)
	if l == nil || g == nil {
		t.Fatal("disclaimer recommendation missing")
	}
	if l.PointsPotential != g.PointsPotential+2.0 {
		t.Errorf("required signal points = %v, want %v", l.PointsPotential, g.PointsPotential+2.0)
	}
	if l.Impact != model.ImpactHigh {
		t.Errorf("required signal impact = %v, want high", l.Impact)
	}
}

func TestGenerate_UniqueTitles(t *testing.T) {
	// The same missing signal in two dimensions must not double up
	score := &model.EEATScore{
		Trust:      model.DimensionScore{Name: "Trust", Signals: []model.SignalEvidence{missing("Dates shown (published / updated)")}},
		Experience: model.DimensionScore{Name: "Experience", Signals: []model.SignalEvidence{missing("Dates shown (published / updated)")}},
	}
	recs := Generate(score, &model.Content{}, model.CitationAudit{}, model.PresetGeneral)

	seen := make(map[string]int)
	for _, r := range recs {
		seen[r.Title]++
	}
	for title, n := range seen {
		if n > 1 {
			t.Errorf("title %q appears %d times", title, n)
		}
	}
}

func TestGenerate_SortedByImpactThenPoints(t *testing.T) {
	score := scoreWith(
		missing("Terms of service linked"),             // low, 1.0
		missing("Privacy policy linked"),               // medium, 1.5
		missing("Disclaimer / legal notice present"),   // high, 4.0
		missing("Affiliate / advertising disclosure"),  // medium, 2.0
		missing("Outbound citation count and quality"), // high, 4.0
	)
	recs := Generate(score, &model.Content{}, model.CitationAudit{}, model.PresetGeneral)

	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		if prev.Impact.Rank() > cur.Impact.Rank() {
			t.Errorf("impact order broken at %d: %v before %v", i, prev.Impact, cur.Impact)
		}
		if prev.Impact.Rank() == cur.Impact.Rank() && prev.PointsPotential < cur.PointsPotential {
			t.Errorf("points order broken at %d: %v before %v", i, prev.PointsPotential, cur.PointsPotential)
		}
	}
}

func TestGenerate_ClaimRecommendations(t *testing.T) {
	audit := model.CitationAudit{
		TotalClaims: 9,
		Unsupported: 7,
		Claims: func() []model.Claim {
			var cs []model.Claim
			for i := 0; i < 7; i++ {
				cs = append(cs, model.Claim{Text: "An unsupported assertion about outcomes.", Grade: model.GradeUnsupported})
			}
			cs = append(cs, model.Claim{Text: "Weakly cited claim.", Grade: model.GradeWeaklySupported})
			cs = append(cs, model.Claim{Text: "Absolutely always true.", Grade: model.GradeNeedsQualification})
			return cs
		}(),
		LowTrustSources: []string{"https://forum.example.com/t/1"},
	}

	recs := Generate(&model.EEATScore{}, &model.Content{}, audit, model.PresetGeneral)

	var unsupported, weak, overbroad *model.Recommendation
	for i := range recs {
		switch {
		case strings.HasPrefix(recs[i].Title, "Add sources for"):
			unsupported = &recs[i]
		case strings.HasPrefix(recs[i].Title, "Upgrade"):
			weak = &recs[i]
		case strings.HasPrefix(recs[i].Title, "Qualify"):
			overbroad = &recs[i]
		}
	}

	if unsupported == nil {
		t.Fatal("no unsupported-claims recommendation")
	}
	if unsupported.Title != "Add sources for 7 unsupported claim(s)" {
		t.Errorf("title = %q", unsupported.Title)
	}
	if unsupported.PointsPotential != 5.0 {
		t.Errorf("unsupported points = %v, want cap at 5.0", unsupported.PointsPotential)
	}
	if n := strings.Count(unsupported.CopyBlock, "\n"); n > 5 {
		t.Errorf("copy block should quote at most 5 examples, got %d lines", n+1)
	}

	if weak == nil {
		t.Fatal("no weak-citations recommendation")
	}
	if weak.PointsPotential != 0.5 {
		t.Errorf("weak points = %v, want 0.5", weak.PointsPotential)
	}
	if !strings.Contains(weak.CopyBlock, "forum.example.com") {
		t.Errorf("weak copy block should name the low trust source: %q", weak.CopyBlock)
	}

	if overbroad == nil {
		t.Fatal("no overbroad-claims recommendation")
	}
	if overbroad.Impact != model.ImpactHigh {
		t.Errorf("overbroad impact = %v, want high", overbroad.Impact)
	}
}

func TestGenerate_ComplianceRecommendations(t *testing.T) {
	score := &model.EEATScore{
		ComplianceFlags: []model.ComplianceFlag{
			{
				Rule:        "Rule 7.1(a)",
				Severity:    "high",
				Location:    "Why Choose Us",
				Explanation: "Guarantee language about legal outcomes is misleading. No attorney can guarantee results.",
				Fix:         "Remove the guarantee.",
			},
			{
				Rule:        "Rule 7.1(b)",
				Severity:    "medium",
				Location:    "Results",
				Explanation: "Short note.",
				Fix:         "Add a disclaimer.",
			},
		},
	}
	recs := Generate(score, &model.Content{}, model.CitationAudit{}, model.PresetGeneral)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}

	high := recs[0]
	if high.Title != "Fix Rule 7.1(a) issue: Guarantee language about legal outcomes is misleading. No at" {
		t.Errorf("high title = %q", high.Title)
	}
	if high.PointsPotential != 3.0 || high.Impact != model.ImpactHigh {
		t.Errorf("high severity should give 3.0/high, got %v/%v", high.PointsPotential, high.Impact)
	}

	medium := recs[1]
	if medium.Title != "Fix Rule 7.1(b) issue: Short note." {
		t.Errorf("medium title = %q", medium.Title)
	}
	if medium.PointsPotential != 1.5 || medium.Impact != model.ImpactMedium {
		t.Errorf("medium severity should give 1.5/medium, got %v/%v", medium.PointsPotential, medium.Impact)
	}
}

func TestGenerate_LegalExtras(t *testing.T) {
	content := &model.Content{
		Sections: []model.Section{
			{Index: 0, Text: "General overview of filing deadlines."},
		},
	}
	recs := Generate(&model.EEATScore{}, content, model.CitationAudit{}, model.PresetLegalGuide)

	var review, howBuilt bool
	for _, r := range recs {
		switch r.Title {
		case "Add attorney review line":
			review = true
		case `Add "How we built this guide" section`:
			howBuilt = true
		}
	}
	if !review {
		t.Error("missing attorney review recommendation for unreviewed legal content")
	}
	if !howBuilt {
		t.Error("missing methodology-section recommendation")
	}

	// Both suppressed when present
	content.Dates.Reviewed = "2024-05-01"
	content.Sections[0].Text = "How we built this guide: from statutes."
	recs = Generate(&model.EEATScore{}, content, model.CitationAudit{}, model.PresetLegalGuide)
	for _, r := range recs {
		if r.Title == "Add attorney review line" || r.Title == `Add "How we built this guide" section` {
			t.Errorf("unexpected legal extra: %s", r.Title)
		}
	}

	// Non-legal presets get no legal extras
	recs = Generate(&model.EEATScore{}, &model.Content{}, model.CitationAudit{}, model.PresetGeneral)
	for _, r := range recs {
		if r.Title == "Add attorney review line" {
			t.Error("legal extra emitted for general preset")
		}
	}
}

func TestClaimExamples_TruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 130)
	got := claimExamples([]model.Claim{{Text: long}})
	if !utf8.ValidString(got) {
		t.Fatalf("example line is not valid UTF-8: %q", got)
	}
	if !strings.Contains(got, strings.Repeat("é", 120)) {
		t.Error("expected the first 120 characters to survive truncation")
	}
	if strings.Contains(got, strings.Repeat("é", 121)) {
		t.Error("expected truncation at 120 characters")
	}
}
