package rater

import (
	"time"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// NewProvider creates the advisory rater from configuration.
// An empty API key disables the rater: (nil, nil).
func NewProvider(config Config) (Provider, error) {
	if config.APIKey == "" {
		return nil, nil
	}
	return NewOpenAIProvider(config)
}

// ConfigFromModel converts model.RaterConfig to rater.Config
func ConfigFromModel(c model.RaterConfig) Config {
	return Config{
		APIKey:    c.APIKey,
		Model:     c.Model,
		BaseURL:   c.BaseURL,
		Timeout:   int(c.Timeout / time.Second),
		MaxTokens: c.MaxTokens,
	}
}
