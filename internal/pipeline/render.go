package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// Renderer writes reports as JSON, Markdown, or a terminal summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var sb strings.Builder

	title := report.Extracted.Title
	if title == "" {
		title = "Untitled page"
	}
	fmt.Fprintf(&sb, "# E-E-A-T Report: %s\n\n", title)
	if report.Extracted.URL != "" {
		fmt.Fprintf(&sb, "Source: %s\n\n", report.Extracted.URL)
	}
	fmt.Fprintf(&sb, "%s\n\n", report.Summary)

	sb.WriteString("## Scores\n\n")
	fmt.Fprintf(&sb, "| Dimension | Score |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Overall | %v/100 |\n", report.Score.Overall)
	for _, d := range []model.DimensionScore{
		report.Score.Experience,
		report.Score.Expertise,
		report.Score.Authoritativeness,
		report.Score.Trust,
	} {
		fmt.Fprintf(&sb, "| %s | %v/25 |\n", d.Name, d.Score)
	}
	fmt.Fprintf(&sb, "\nYMYL risk: **%s** · Preset: **%s**\n\n", report.Score.Risk, report.Score.PresetUsed)

	writeSignals(&sb, report)
	writeClaims(&sb, report)
	writeCompliance(&sb, report)
	writeRecommendations(&sb, report)

	if r.includeFooter {
		fmt.Fprintf(&sb, "---\n\nGenerated by eeatgrader on %s\n",
			report.AnalyzedAt.Format("2006-01-02 15:04 UTC"))
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeSignals(sb *strings.Builder, report *model.Report) {
	sb.WriteString("## Signals\n\n")
	for _, d := range []model.DimensionScore{
		report.Score.Experience,
		report.Score.Expertise,
		report.Score.Authoritativeness,
		report.Score.Trust,
	} {
		fmt.Fprintf(sb, "### %s (%v/25)\n\n", d.Name, d.Score)
		if d.Summary != "" {
			fmt.Fprintf(sb, "%s\n\n", d.Summary)
		}
		for _, s := range d.Signals {
			mark := "✗"
			if s.Found {
				mark = "✓"
			}
			fmt.Fprintf(sb, "- %s %s (%.1f pts)", mark, s.Signal, s.Points)
			if s.Quote != "" {
				fmt.Fprintf(sb, " — %q", s.Quote)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
}

func writeClaims(sb *strings.Builder, report *model.Report) {
	audit := report.CitationAudit
	if audit.TotalClaims == 0 {
		return
	}
	sb.WriteString("## Claims & Citations\n\n")
	fmt.Fprintf(sb, "%d claim(s): %d supported, %d weakly supported, %d unsupported, %d need qualification.\n\n",
		audit.TotalClaims, audit.Supported, audit.WeaklySupported, audit.Unsupported, audit.NeedsQualification)
	for _, c := range audit.Claims {
		if c.Grade == model.GradeSupported {
			continue
		}
		fmt.Fprintf(sb, "- [%s] %q — %s\n", c.Grade, c.Text, c.Explanation)
	}
	if len(audit.LowTrustSources) > 0 {
		fmt.Fprintf(sb, "\nLow-trust sources cited: %s\n", strings.Join(audit.LowTrustSources, ", "))
	}
	sb.WriteString("\n")
}

func writeCompliance(sb *strings.Builder, report *model.Report) {
	flags := report.Score.ComplianceFlags
	if len(flags) == 0 {
		return
	}
	sb.WriteString("## Compliance Flags\n\n")
	for _, f := range flags {
		fmt.Fprintf(sb, "- **%s** (%s) in %s: %s\n  - Fix: %s\n", f.Rule, f.Severity, f.Location, f.Explanation, f.Fix)
	}
	sb.WriteString("\n")
}

func writeRecommendations(sb *strings.Builder, report *model.Report) {
	if len(report.Recommendations) == 0 {
		return
	}
	sb.WriteString("## Recommendations\n\n")
	for i, rec := range report.Recommendations {
		fmt.Fprintf(sb, "### %d. %s\n\n", i+1, rec.Title)
		fmt.Fprintf(sb, "- Impact: %s · Effort: %s · Potential: +%.1f pts (%s)\n", rec.Impact, rec.Effort, rec.PointsPotential, rec.Dimension)
		fmt.Fprintf(sb, "- Where: %s\n", rec.Where)
		fmt.Fprintf(sb, "- Why: %s\n", rec.WhyItMatters)
		if rec.CopyBlock != "" {
			fmt.Fprintf(sb, "\n```\n%s\n```\n", rec.CopyBlock)
		}
		sb.WriteString("\n")
	}
}

// RenderSummary prints the terminal digest after an analysis
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Println()
	fmt.Println(report.Summary)
	if n := len(report.Recommendations); n > 0 {
		top := report.Recommendations[0]
		fmt.Printf("\nTop fix: %s (+%.1f pts, %s effort)\n", top.Title, top.PointsPotential, top.Effort)
		if n > 1 {
			fmt.Printf("%d more recommendation(s) in the full report.\n", n-1)
		}
	}
}

// RenderReport writes the report to the requested outputs and prints
// the terminal summary
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
