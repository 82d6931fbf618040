package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/oaslint/cache"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled bool
	CacheMaxSize int

	// Validate tool defaults.
	ValidateStrict          bool
	AllowFutureVersions     bool
	RequireRateLimitHeaders bool

	// Limits.
	MaxInlineSize int64
	IssueLimit    int
	MaxLimit      int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASLINT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:            envBool("OASLINT_CACHE_ENABLED", true),
		CacheMaxSize:            envInt("OASLINT_CACHE_MAX_SIZE", cache.DefaultMaxSize),
		ValidateStrict:          envBool("OASLINT_VALIDATE_STRICT", false),
		AllowFutureVersions:     envBool("OASLINT_ALLOW_FUTURE_VERSIONS", false),
		RequireRateLimitHeaders: envBool("OASLINT_REQUIRE_RATE_LIMIT_HEADERS", false),
		MaxInlineSize:           envInt64("OASLINT_MAX_INLINE_SIZE", 10*1024*1024),
		IssueLimit:              envInt("OASLINT_ISSUE_LIMIT", 100),
		MaxLimit:                envInt("OASLINT_MAX_LIMIT", 1000),
	}
}

// cacheConfig returns the cache configuration selected by the environment.
func (c *serverConfig) cacheConfig() cache.Config {
	return cache.Config{Enabled: c.CacheEnabled, MaxSize: c.CacheMaxSize}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
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
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int64 env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
