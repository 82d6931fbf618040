package validator

import (
	"strconv"

	"github.com/erraggy/oaslint/cache"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/shape"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	strict                  bool
	allowFutureVersions     bool
	requireRateLimitHeaders bool

	// cacheConfig is applied to the cache set before validating when set
	cacheConfig *cache.Config
	caches      *cache.Set
	shape       shape.Validator
	logger      parser.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		caches: cache.Default(),
		logger: parser.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.cacheConfig != nil && cfg.caches.Config() != *cfg.cacheConfig {
		cfg.caches.Configure(*cfg.cacheConfig)
		cfg.logger.Debug("cache reconfigured",
			"enabled", cfg.cacheConfig.Enabled,
			"max_size", cfg.cacheConfig.MaxSize)
	}
	return cfg, nil
}

// shapeOptions returns the options forwarded to the shape validator.
func (c *validateConfig) shapeOptions() shape.Options {
	return shape.Options{
		AllowFutureVersions:     c.allowFutureVersions,
		RequireRateLimitHeaders: c.requireRateLimitHeaders,
	}
}

// key identifies the option set in result cache keys.
func (c *validateConfig) key() string {
	return "strict=" + strconv.FormatBool(c.strict) +
		",future=" + strconv.FormatBool(c.allowFutureVersions) +
		",ratelimit=" + strconv.FormatBool(c.requireRateLimitHeaders)
}

// WithStrict enables or disables the structural checks (ambiguous path
// templates, duplicate parameters).
// Default: false
func WithStrict(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.strict = enabled
		return nil
	}
}

// WithAllowFutureVersions accepts any 3.x openapi version newer than 3.1.
// Default: false
func WithAllowFutureVersions(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.allowFutureVersions = enabled
		return nil
	}
}

// WithRequireRateLimitHeaders requires X-RateLimit-* headers on every 2XX
// response.
// Default: false
func WithRequireRateLimitHeaders(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.requireRateLimitHeaders = enabled
		return nil
	}
}

// WithCache configures the cache set used by this call. When the set's
// current configuration differs, all of its entries are discarded first.
// A maxSize of zero or less disables caching.
func WithCache(enabled bool, maxSize int) Option {
	return func(cfg *validateConfig) error {
		cfg.cacheConfig = &cache.Config{Enabled: enabled, MaxSize: maxSize}
		return nil
	}
}

// WithCacheSet replaces the process-wide cache set for this call.
func WithCacheSet(set *cache.Set) Option {
	return func(cfg *validateConfig) error {
		if set == nil {
			return &oaserrors.ConfigError{Option: "cache set", Message: "must not be nil"}
		}
		cfg.caches = set
		return nil
	}
}

// WithShapeValidator replaces the default shape validator. Results produced
// with a custom shape validator are not stored in the results cache.
func WithShapeValidator(v shape.Validator) Option {
	return func(cfg *validateConfig) error {
		if v == nil {
			return &oaserrors.ConfigError{Option: "shape validator", Message: "must not be nil"}
		}
		cfg.shape = v
		return nil
	}
}

// WithLogger sets the logger used for debug output.
// Default: parser.NopLogger
func WithLogger(l parser.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = parser.OrNop(l)
		return nil
	}
}
