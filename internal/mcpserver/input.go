package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/gwlint/config"
)

// configInput represents the two ways a gateway configuration can be provided
// to a tool. Exactly one of File or Content must be set.
type configInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a gateway configuration file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline gateway configuration content (JSON or YAML)"`
}

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *config.ParseResult
	insertAt  time.Time
	expiresAt time.Time
}

// parseCacheStore is a session-scoped cache of decoded configurations.
// File inputs are keyed by (absolutePath, modTime) and content inputs by a
// SHA-256 hash. Cached results are shared; callers must not modify them.
type parseCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var parseCache = &parseCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *parseCacheStore) get(key string) *config.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.insertAt = time.Now()
	return e.result
}

// put stores a result, evicting the least recently used entry at capacity.
func (c *parseCacheStore) put(key string, result *config.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		delete(c.entries, oldestKey)
	}

	c.entries[key] = entry
}

// sweep removes all expired entries.
func (c *parseCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper removes expired entries every interval until ctx is done.
// Only the first call spawns a sweeper.
func (c *parseCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *parseCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

func (c *parseCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key for in, or "" when it cannot be cached.
func (in configInput) cacheKey() string {
	switch {
	case in.File != "":
		absPath, err := filepath.Abs(in.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case in.Content != "":
		h := sha256.Sum256([]byte(in.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve decodes the configuration from whichever input was provided, using
// the cache when enabled.
func (in configInput) resolve() (*config.ParseResult, error) {
	if (in.File == "") == (in.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if in.Content != "" && int64(len(in.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set GWLINT_MAX_INLINE_SIZE to increase",
			len(in.Content), cfg.MaxInlineSize)
	}

	var key string
	ttl := cfg.CacheContentTTL
	if cfg.CacheEnabled {
		key = in.cacheKey()
		if in.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached := parseCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var opt config.Option
	if in.File != "" {
		opt = config.WithFilePath(in.File)
	} else {
		opt = config.WithReader(strings.NewReader(in.Content))
	}
	result, err := config.ParseWithOptions(opt)
	if err != nil {
		return nil, err
	}

	if key != "" {
		parseCache.put(key, result, ttl)
	}
	return result, nil
}
