package cache

import (
	"strings"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	key := CacheKey("https://example.com/page")
	if !strings.HasPrefix(key, "eeatgrader:v1:") {
		t.Errorf("key = %q, want versioned prefix", key)
	}
	if key != CacheKey("https://example.com/page") {
		t.Error("same URL should produce the same key")
	}
	if key == CacheKey("https://example.com/other") {
		t.Error("different URLs should produce different keys")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "value" {
		t.Errorf("Get = %q, %v; want value, true", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set("k", []byte("persisted"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh instance over the same directory sees the entry
	c2 := NewDiskCache(dir, time.Minute)
	val, found := c2.Get("k")
	if !found || string(val) != "persisted" {
		t.Errorf("Get = %q, %v; want persisted, true", val, found)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expired entry should not be returned")
	}
}

func TestLayeredCache_PromotesFromDisk(t *testing.T) {
	dir := t.TempDir()

	// Seed the disk layer only
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("cold"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	layered := NewLayeredCache(time.Minute, dir, time.Minute)
	val, found := layered.Get("k")
	if !found || string(val) != "cold" {
		t.Fatalf("Get = %q, %v; want cold, true", val, found)
	}

	// After promotion the memory layer serves the value even if the
	// disk entry disappears
	_ = disk.Delete("k")
	if _, found := layered.Get("k"); !found {
		t.Error("promoted entry should be served from memory")
	}
}
