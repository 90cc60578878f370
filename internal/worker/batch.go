package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// Analyzer defines the interface for analyzing a URL
type Analyzer interface {
	AnalyzeURL(ctx context.Context, url string, presetOverride model.ContentPreset) (*model.Report, error)
}

// AnalyzeJob represents a URL analysis job
type AnalyzeJob struct {
	URL      string
	Preset   model.ContentPreset
	Analyzer Analyzer
}

// Execute executes the analysis job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.AnalyzeURL(ctx, j.URL, j.Preset)
	if err != nil {
		return &AnalyzeResult{
			URL:   j.URL,
			Error: err,
		}
	}
	return &AnalyzeResult{
		URL:    j.URL,
		Report: report,
	}
}

// AnalyzeResult represents the result of an analysis job
type AnalyzeResult struct {
	URL    string
	Report *model.Report
	Error  error
}

// GetError returns the error from the analysis result
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple URLs concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	preset      model.ContentPreset
	concurrency int
}

// NewBatchProcessor creates a new batch processor. The preset, when
// non-empty, overrides auto-detection for every URL in the batch.
func NewBatchProcessor(analyzer Analyzer, preset model.ContentPreset, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		preset:      preset,
		concurrency: concurrency,
	}
}

// ProcessURLs analyzes multiple URLs concurrently
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []*AnalyzeResult {
	if len(urls) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, url := range urls {
		job := &AnalyzeJob{
			URL:      url,
			Preset:   b.preset,
			Analyzer: b.analyzer,
		}
		pool.Submit(job)
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessFile reads URLs from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}

	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads URLs from a file (one per line)
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate URLs
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return urls, nil
}
