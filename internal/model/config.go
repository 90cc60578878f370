package model

import "time"

// Config is the full runtime configuration, overridable via flags,
// EEATGRADER_* environment variables, or ~/.eeatgrader/config.yaml
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Rater       RaterConfig       `yaml:"rater" mapstructure:"rater"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" mapstructure:"rate_limit"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls page fetching
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS   bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	ProbeSite     bool          `yaml:"probe_site" mapstructure:"probe_site"`
}

// CacheConfig controls the fetch cache. A non-empty Dir adds a
// persistent disk layer under the in-memory cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Dir     string        `yaml:"dir,omitempty" mapstructure:"dir"`
}

// RaterConfig holds advisory-rater (LLM) settings. An empty APIKey
// disables the rater; the pipeline then scores rules-only.
type RaterConfig struct {
	APIKey    string        `yaml:"api_key" mapstructure:"api_key"`
	Model     string        `yaml:"model" mapstructure:"model"`
	BaseURL   string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens int           `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// ConcurrencyConfig controls worker counts for batch mode and site probing
type ConcurrencyConfig struct {
	Workers      int `yaml:"workers" mapstructure:"workers"`
	ProbeWorkers int `yaml:"probe_workers" mapstructure:"probe_workers"`
}

// RateLimitConfig throttles outbound requests per domain
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "EEATGrader/1.0 (+https://github.com/eeatgrader/eeatgrader)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
			ProbeSite:     false,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Rater: RaterConfig{
			Model:     "gpt-4o",
			Timeout:   30 * time.Second,
			MaxTokens: 2000,
		},
		Concurrency: ConcurrencyConfig{
			Workers:      4,
			ProbeWorkers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
