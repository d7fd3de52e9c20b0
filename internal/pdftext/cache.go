package pdftext

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pfrederiksen/hindsight/internal/storage"
)

// DefaultTTL is how long cached page text stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache holds extracted page text keyed by PDF fingerprint, with per-entry
// cache times for expiry.
type Cache struct {
	Pages    map[string][]string  `json:"pages"`
	CachedAt map[string]time.Time `json:"cached_at"`
	TTL      time.Duration        `json:"-"`
}

// NewCache creates an empty cache with the default TTL.
func NewCache() *Cache {
	return &Cache{
		Pages:    make(map[string][]string),
		CachedAt: make(map[string]time.Time),
		TTL:      DefaultTTL,
	}
}

// Get returns cached pages for a fingerprint, or nil if absent or expired.
// Expired entries are removed.
func (c *Cache) Get(key string) []string {
	pages, exists := c.Pages[key]
	if !exists {
		return nil
	}

	cachedTime, hasTime := c.CachedAt[key]
	if !hasTime || time.Since(cachedTime) > c.TTL {
		delete(c.Pages, key)
		delete(c.CachedAt, key)
		return nil
	}

	return pages
}

// Set stores pages for a fingerprint.
func (c *Cache) Set(key string, pages []string) {
	c.Pages[key] = pages
	c.CachedAt[key] = time.Now()
}

// CleanExpired removes expired entries and reports how many were dropped.
func (c *Cache) CleanExpired() int {
	removed := 0
	now := time.Now()

	for key, cachedTime := range c.CachedAt {
		if now.Sub(cachedTime) > c.TTL {
			delete(c.Pages, key)
			delete(c.CachedAt, key)
			removed++
		}
	}

	return removed
}

// Size returns the number of cached documents.
func (c *Cache) Size() int {
	return len(c.Pages)
}

// Fingerprint hashes a file's contents so cache entries survive renames
// but not edits.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// LoadCache reads a cache file from disk. A missing file yields an empty
// cache. The TTL is restored after load since it is not serialized.
func LoadCache(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCache(), nil
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	var cache Cache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing cache: %w", err)
	}

	if cache.Pages == nil {
		cache.Pages = make(map[string][]string)
	}
	if cache.CachedAt == nil {
		cache.CachedAt = make(map[string]time.Time)
	}
	cache.TTL = DefaultTTL

	return &cache, nil
}

// SaveCache writes the cache to disk, creating the parent directory if
// needed.
func SaveCache(path string, cache *Cache) error {
	if err := storage.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}

	return nil
}
