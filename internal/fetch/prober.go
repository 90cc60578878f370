package fetch

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// probeTargets maps candidate site paths to the trust signal each one
// confirms when it responds
var probeTargets = []struct {
	paths  []string
	signal string
}{
	{[]string{"/about", "/about-us"}, "about"},
	{[]string{"/contact", "/contact-us"}, "contact"},
	{[]string{"/privacy", "/privacy-policy"}, "privacy"},
	{[]string{"/terms", "/terms-of-service", "/terms-of-use"}, "terms"},
	{[]string{"/editorial-policy", "/editorial-guidelines"}, "editorial"},
	{[]string{"/attorneys", "/our-team", "/our-attorneys"}, "attorneys"},
}

// Prober confirms site trust pages by issuing HEAD requests against
// well-known paths. On-page link detection can miss pages that exist
// but are not linked from the analyzed article.
type Prober struct {
	fetcher *Fetcher
	workers int
}

// NewProber creates a Prober sharing the fetcher's HTTP client and
// rate limits
func NewProber(f *Fetcher, workers int) *Prober {
	if workers <= 0 {
		workers = 1
	}
	return &Prober{fetcher: f, workers: workers}
}

// head reports whether the path answers with a 2xx or 3xx
func (p *Prober) head(ctx context.Context, pageURL string) bool {
	if err := p.fetcher.limiter.Wait(ctx, pageURL); err != nil {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, pageURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", p.fetcher.userAgent)

	resp, err := p.fetcher.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

// Probe checks the site's well-known trust paths and merges hits into
// signals. Existing on-page detections are never cleared.
func (p *Prober) Probe(ctx context.Context, pageURL string, signals *model.SiteSignals) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return
	}
	base := u.Scheme + "://" + u.Host

	type hit struct {
		signal string
		path   string
	}

	jobs := make(chan hit)
	hits := make(chan hit)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if p.head(ctx, base+j.path) {
					hits <- j
				}
			}
		}()
	}

	go func() {
		for _, target := range probeTargets {
			for _, path := range target.paths {
				jobs <- hit{signal: target.signal, path: path}
			}
		}
		close(jobs)
		wg.Wait()
		close(hits)
	}()

	confirmed := make(map[string][]string)
	for h := range hits {
		confirmed[h.signal] = append(confirmed[h.signal], h.path)
	}

	if len(confirmed["about"]) > 0 {
		signals.HasAboutPage = true
	}
	if paths := confirmed["contact"]; len(paths) > 0 {
		signals.HasContactPage = true
		for _, path := range paths {
			if !containsPath(signals.ContactPaths, path) {
				signals.ContactPaths = append(signals.ContactPaths, path)
			}
		}
	}
	if len(confirmed["privacy"]) > 0 {
		signals.HasPrivacyPolicy = true
	}
	if len(confirmed["terms"]) > 0 {
		signals.HasTerms = true
	}
	if len(confirmed["editorial"]) > 0 {
		signals.HasEditorialPolicy = true
	}
	if len(confirmed["attorneys"]) > 0 {
		signals.HasAttorneyRoster = true
	}
}

func containsPath(paths []string, path string) bool {
	for _, p := range paths {
		if strings.EqualFold(p, path) {
			return true
		}
	}
	return false
}
