package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Result pagination.
	ResultLimit int
	MaxLimit    int

	// MaxInlineSize caps the size of inline configuration content in bytes.
	MaxInlineSize int64

	// Lint tool defaults, applied when the tool call does not set them.
	LintDefault bool
	LintAutoFix bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from GWLINT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("GWLINT_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("GWLINT_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("GWLINT_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("GWLINT_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("GWLINT_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ResultLimit:        envInt("GWLINT_RESULT_LIMIT", 100),
		MaxLimit:           envInt("GWLINT_MAX_LIMIT", 1000),
		MaxInlineSize:      int64(envInt("GWLINT_MAX_INLINE_SIZE", 10*1024*1024)),
		LintDefault:        envBool("GWLINT_LINT_DEFAULT", false),
		LintAutoFix:        envBool("GWLINT_LINT_AUTOFIX", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
