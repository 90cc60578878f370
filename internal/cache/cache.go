// Package cache stores fetched page responses between analyses, in
// memory for a single run and optionally on disk across runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores serialized fetch results keyed by CacheKey
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives a stable, versioned key from a page URL. Bumping
// the version invalidates entries written by older releases.
func CacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "eeatgrader:v1:" + hex.EncodeToString(hash[:])
}
