package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/eeatgrader/eeatgrader/internal/model"
	"github.com/eeatgrader/eeatgrader/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	presetFlag  string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noRobots    bool
	noFooter    bool
	insecureTLS bool
	probeSite   bool
	httpProxy   string
	httpsProxy  string
	aiEnabled   bool
	aiModel     string
	aiBaseURL   string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <url|file>",
	Short: "Analyze a page and generate an E-E-A-T report",
	Long: `Analyze grades a single page:
- Fetch the page (or read a local .html/.txt file)
- Classify YMYL risk and pick a scoring preset
- Run deterministic E-E-A-T rule checks
- Optionally blend in an advisory AI rating
- Audit claims against citations and scan for compliance risks
- Generate ranked recommendations with paste-ready copy

Example:
  eeatgrader analyze https://example.com/personal-injury-guide
  eeatgrader analyze article.html --preset legal_faq --md report.md
  eeatgrader analyze https://example.com --ai --probe-site`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&presetFlag, "preset", "", "scoring preset override (default: auto-detect; see 'eeatgrader presets')")

	// HTTP flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "EEATGrader/1.0 (+https://github.com/eeatgrader/eeatgrader)", "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	analyzeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt (use only on sites you own)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	analyzeCmd.Flags().BoolVar(&probeSite, "probe-site", false, "probe the site for trust pages (about, contact, privacy, ...)")
	analyzeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	analyzeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// AI rater flags
	analyzeCmd.Flags().BoolVar(&aiEnabled, "ai", false, "enable the advisory AI rater (requires OPENAI_API_KEY)")
	analyzeCmd.Flags().StringVar(&aiModel, "ai-model", "gpt-4o", "AI rater model name")
	analyzeCmd.Flags().StringVar(&aiBaseURL, "ai-base-url", "", "AI rater base URL (for OpenAI-compatible endpoints)")
}

// buildConfig assembles pipeline configuration from flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.RespectRobots = !noRobots
	cfg.HTTP.ProbeSite = probeSite
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if aiEnabled {
		cfg.Rater.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Rater.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		cfg.Rater.Model = aiModel
		cfg.Rater.BaseURL = aiBaseURL
	}

	return cfg, nil
}

// resolvePreset validates the --preset flag
func resolvePreset(name string) (model.ContentPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range model.AllPresets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preset %q (run 'eeatgrader presets' for the list)", name)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	target := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	preset, err := resolvePreset(presetFlag)
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", target)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	var report *model.Report
	switch {
	case strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://"):
		report, err = p.AnalyzeURL(ctx, target, preset)
	default:
		report, err = analyzeFile(ctx, p, target, preset)
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d sections\n", len(report.Extracted.Sections))
		fmt.Fprintf(os.Stderr, "✓ Audited %d claims\n", report.CitationAudit.TotalClaims)
		fmt.Fprintf(os.Stderr, "✓ Overall E-E-A-T score: %v/100\n", report.Score.Overall)
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// analyzeFile grades a local file. Files that look like HTML go
// through the HTML extractor; everything else is treated as plain text.
func analyzeFile(ctx context.Context, p *pipeline.Pipeline, path string, preset model.ContentPreset) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	text := string(data)
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") ||
		strings.HasPrefix(strings.TrimSpace(text), "<") {
		return p.AnalyzeHTML(ctx, text, "", preset)
	}
	return p.AnalyzeText(ctx, text, preset)
}
