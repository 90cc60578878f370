package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/eeatgrader/eeatgrader/internal/model"
	"github.com/eeatgrader/eeatgrader/internal/rater"
)

const testHTML = `<!DOCTYPE html>
<html><head><title>Guide to Filing a Personal Injury Claim</title>
<meta name="description" content="How to file a claim after an accident.">
</head><body>
<article>
<p>According to a 2023 study, 60% of injury claims settle before trial. In my experience
handling these cases, preparation makes the difference.</p>
<h2>Deadlines</h2>
<p>You must file your claim within the statute of limitations. In our experience,
most clients wait too long before speaking to an attorney about their case.</p>
<p>See the statute at <a href="https://www.law.cornell.edu/statutes">Cornell Law</a>
for the full text of the limitations rules that apply in most states.</p>
<h2>Disclaimer</h2>
<p>This article is for informational purposes only and is not legal advice.</p>
</article>
</body></html>`

func testPipeline(t *testing.T) *Pipeline {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return NewPipeline(cfg)
}

func TestAnalyzeHTML_RulesOnly(t *testing.T) {
	p := testPipeline(t)
	if p.rater != nil {
		t.Fatal("rater should be disabled without an API key")
	}

	report, err := p.AnalyzeHTML(context.Background(), testHTML, "https://example.com/guide", "")
	if err != nil {
		t.Fatalf("AnalyzeHTML: %v", err)
	}

	if report.Score.Overall < 0 || report.Score.Overall > 100 {
		t.Errorf("overall = %v, want within [0, 100]", report.Score.Overall)
	}
	if report.Score.PresetUsed == "" {
		t.Error("preset should be auto-detected")
	}
	if report.Score.Risk == "" {
		t.Error("risk level should be set")
	}
	if !strings.HasPrefix(report.Summary, "Overall E-E-A-T score:") {
		t.Errorf("summary = %q, want E-E-A-T prefix", report.Summary)
	}
	if report.Extracted.RawHTML != "" {
		t.Error("raw HTML should be stripped from the report")
	}
	if report.AnalyzedAt.IsZero() {
		t.Error("analyzed_at should be set")
	}
}

func TestAnalyzeHTML_Deterministic(t *testing.T) {
	p := testPipeline(t)

	first, err := p.AnalyzeHTML(context.Background(), testHTML, "https://example.com/guide", "")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := p.AnalyzeHTML(context.Background(), testHTML, "https://example.com/guide", "")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	first.AnalyzedAt = time.Time{}
	second.AnalyzedAt = time.Time{}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical input should produce identical reports")
	}
}

func TestAnalyzeHTML_PresetOverride(t *testing.T) {
	p := testPipeline(t)

	report, err := p.AnalyzeHTML(context.Background(), testHTML, "https://example.com/guide", model.PresetMedical)
	if err != nil {
		t.Fatalf("AnalyzeHTML: %v", err)
	}
	if report.Score.PresetUsed != model.PresetMedical {
		t.Errorf("preset = %q, want override %q", report.Score.PresetUsed, model.PresetMedical)
	}
}

func TestAnalyzeText_PlainText(t *testing.T) {
	p := testPipeline(t)

	report, err := p.AnalyzeText(context.Background(), "First paragraph of the article.\n\nSecond paragraph with more detail.", "")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if len(report.Extracted.Sections) != 2 {
		t.Errorf("sections = %d, want 2", len(report.Extracted.Sections))
	}
	if report.Score.PresetUsed != model.PresetGeneral {
		t.Errorf("preset = %q, want general for plain prose", report.Score.PresetUsed)
	}
}

type stubProvider struct {
	result *rater.Result
}

func (s *stubProvider) Name() string                         { return "stub" }
func (s *stubProvider) IsAvailable(ctx context.Context) bool { return true }
func (s *stubProvider) Rate(ctx context.Context, req rater.Request) (*rater.Result, error) {
	return s.result, nil
}

func TestAnalyze_MergesAdvisoryRater(t *testing.T) {
	p := testPipeline(t)

	dim := func(name string, score float64) model.DimensionScore {
		return model.DimensionScore{Name: name, Score: score, MaxScore: 25,
			Summary: "Advisory summary for " + name + "."}
	}
	p.rater = &stubProvider{result: &rater.Result{
		Experience:        dim("Experience", 20),
		Expertise:         dim("Expertise", 20),
		Authoritativeness: dim("Authoritativeness", 20),
		Trust:             dim("Trust", 20),
	}}

	rulesOnly := testPipeline(t)
	base, err := rulesOnly.AnalyzeHTML(context.Background(), testHTML, "https://example.com/guide", "")
	if err != nil {
		t.Fatalf("rules-only run: %v", err)
	}
	merged, err := p.AnalyzeHTML(context.Background(), testHTML, "https://example.com/guide", "")
	if err != nil {
		t.Fatalf("merged run: %v", err)
	}

	if merged.Score.Experience.Score == base.Score.Experience.Score &&
		merged.Score.Trust.Score == base.Score.Trust.Score {
		t.Error("advisory rater should shift the blended dimension scores")
	}
	if merged.Score.Experience.Summary != "Advisory summary for Experience." {
		t.Errorf("summary = %q, want the advisory summary", merged.Score.Experience.Summary)
	}
}

func TestRenderReport_WritesOutputs(t *testing.T) {
	p := testPipeline(t)

	report, err := p.AnalyzeHTML(context.Background(), testHTML, "https://example.com/guide", "")
	if err != nil {
		t.Fatalf("AnalyzeHTML: %v", err)
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")

	if err := p.RenderReport(report, jsonPath, mdPath, false); err != nil {
		t.Fatalf("RenderReport: %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read JSON: %v", err)
	}
	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if decoded.Score.Overall != report.Score.Overall {
		t.Errorf("round-trip overall = %v, want %v", decoded.Score.Overall, report.Score.Overall)
	}

	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read Markdown: %v", err)
	}
	for _, want := range []string{"# E-E-A-T Report:", "## Scores", "## Signals", "## Recommendations"} {
		if !strings.Contains(string(md), want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}
