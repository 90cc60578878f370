// Package fetch retrieves pages over HTTP with size limits, robots.txt
// checks, per-domain rate limiting, and a short-lived response cache.
package fetch

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"

	"github.com/eeatgrader/eeatgrader/internal/cache"
	"github.com/eeatgrader/eeatgrader/internal/model"
	"github.com/eeatgrader/eeatgrader/internal/util"
	"github.com/eeatgrader/eeatgrader/internal/worker"
)

// Fetcher fetches HTML content from URLs
type Fetcher struct {
	httpClient    *http.Client
	userAgent     string
	maxBytes      int64
	respectRobots bool

	cache    cache.Cache // nil when caching is disabled
	cacheTTL time.Duration
	limiter  *worker.Limiter

	mu     sync.Mutex
	robots map[string]*robotstxt.RobotsData
}

// Result contains the fetched HTML and response metadata
type Result struct {
	HTML        string
	FinalURL    string
	StatusCode  int
	ContentType string
}

// New creates a Fetcher from configuration
func New(cfg *model.Config) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, ""),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			c = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
		}
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent:     cfg.HTTP.UserAgent,
		maxBytes:      cfg.HTTP.MaxBodyBytes,
		respectRobots: cfg.HTTP.RespectRobots,
		cache:         c,
		cacheTTL:      cfg.Cache.TTL,
		limiter:       worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		robots:        make(map[string]*robotstxt.RobotsData),
	}
}

// allowed checks robots.txt for the URL's path, caching the parsed
// policy per host. Unreachable or missing robots.txt allows the fetch.
func (f *Fetcher) allowed(ctx context.Context, u *url.URL) bool {
	if !f.respectRobots {
		return true
	}

	f.mu.Lock()
	data, ok := f.robots[u.Host]
	f.mu.Unlock()

	if !ok {
		robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
		if err != nil {
			return true
		}
		req.Header.Set("User-Agent", f.userAgent)
		resp, err := f.httpClient.Do(req)
		if err != nil {
			return true
		}
		defer resp.Body.Close()

		data, err = robotstxt.FromResponse(resp)
		if err != nil {
			return true
		}
		f.mu.Lock()
		f.robots[u.Host] = data
		f.mu.Unlock()
	}

	return data.TestAgent(u.Path, f.userAgent)
}

// Fetch retrieves HTML content from the given URL
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	key := cache.CacheKey(rawURL)
	if f.cache != nil {
		if data, ok := f.cache.Get(key); ok {
			var cached Result
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}

	if !f.allowed(ctx, u) {
		return nil, fmt.Errorf("blocked by robots.txt: %s", rawURL)
	}

	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	result := &Result{
		HTML:        string(body),
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}

	if f.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = f.cache.Set(key, data, f.cacheTTL)
		}
	}

	return result, nil
}
