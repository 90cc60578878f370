// Package pipeline orchestrates the complete analysis: fetch, extract,
// classify, score, audit, and report assembly.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/eeatgrader/eeatgrader/internal/claims"
	"github.com/eeatgrader/eeatgrader/internal/compliance"
	"github.com/eeatgrader/eeatgrader/internal/extract"
	"github.com/eeatgrader/eeatgrader/internal/fetch"
	"github.com/eeatgrader/eeatgrader/internal/model"
	"github.com/eeatgrader/eeatgrader/internal/rater"
	"github.com/eeatgrader/eeatgrader/internal/recommend"
	"github.com/eeatgrader/eeatgrader/internal/risk"
	"github.com/eeatgrader/eeatgrader/internal/rules"
	"github.com/eeatgrader/eeatgrader/internal/score"
)

// Pipeline runs the full grading process for one or more pages
type Pipeline struct {
	fetcher  *fetch.Fetcher
	prober   *fetch.Prober
	rater    rater.Provider // nil when no API key is configured
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a pipeline from configuration. A rater that
// fails to initialize is reported and skipped; the pipeline then
// scores rules-only.
func NewPipeline(cfg *model.Config) *Pipeline {
	fetcher := fetch.New(cfg)

	var prober *fetch.Prober
	if cfg.HTTP.ProbeSite {
		prober = fetch.NewProber(fetcher, cfg.Concurrency.ProbeWorkers)
	}

	provider, err := rater.NewProvider(rater.ConfigFromModel(cfg.Rater))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize AI rater: %v\n", err)
		provider = nil
	}

	return &Pipeline{
		fetcher:  fetcher,
		prober:   prober,
		rater:    provider,
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		config:   cfg,
	}
}

// AnalyzeURL fetches a page and runs the full analysis
func (p *Pipeline) AnalyzeURL(ctx context.Context, url string, presetOverride model.ContentPreset) (*model.Report, error) {
	result, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	content, err := extract.FromHTML(result.HTML, result.FinalURL)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	if p.prober != nil {
		p.prober.Probe(ctx, result.FinalURL, &content.SiteSignals)
	}

	return p.Analyze(ctx, content, presetOverride)
}

// AnalyzeHTML runs the full analysis on raw HTML, e.g. a local file.
// sourceURL may be empty.
func (p *Pipeline) AnalyzeHTML(ctx context.Context, html, sourceURL string, presetOverride model.ContentPreset) (*model.Report, error) {
	content, err := extract.FromHTML(html, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return p.Analyze(ctx, content, presetOverride)
}

// AnalyzeText runs the analysis on pasted plain text
func (p *Pipeline) AnalyzeText(ctx context.Context, text string, presetOverride model.ContentPreset) (*model.Report, error) {
	return p.Analyze(ctx, extract.FromText(text), presetOverride)
}

// Analyze scores extracted content and assembles the report. The
// deterministic rule result is always computed; the AI rater is
// advisory and any rater failure degrades to rules-only scoring.
func (p *Pipeline) Analyze(ctx context.Context, content *model.Content, presetOverride model.ContentPreset) (*model.Report, error) {
	riskLevel := risk.Classify(content)

	preset := presetOverride
	if preset == "" {
		preset = risk.DetectPreset(content)
	}

	ruleScores := rules.Run(content)

	var advisory *rater.Result
	if p.rater != nil {
		result, err := p.rater.Rate(ctx, rater.NewRequest(content, riskLevel, preset))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: AI rater unavailable: %v\n", err)
		} else {
			advisory = result
		}
	}

	merged := score.Merge(ruleScores, advisory)

	eeatScore := model.EEATScore{
		Overall:           score.Overall(merged, preset),
		Experience:        merged.Experience,
		Expertise:         merged.Expertise,
		Authoritativeness: merged.Authoritativeness,
		Trust:             merged.Trust,
		Risk:              riskLevel,
		PresetUsed:        preset,
		ComplianceFlags:   compliance.Scan(content),
	}

	audit := claims.Audit(content)

	recs := recommend.Generate(&eeatScore, content, audit, preset)

	report := &model.Report{
		Score:           eeatScore,
		Extracted:       *content,
		CitationAudit:   audit,
		Recommendations: recs,
		Summary:         buildSummary(eeatScore, audit),
		AnalyzedAt:      time.Now().UTC(),
	}
	report.Extracted.RawHTML = ""

	return report, nil
}
