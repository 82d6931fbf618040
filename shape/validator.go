package shape

import (
	"strconv"

	"github.com/erraggy/oaslint/cache"
	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/parser"
)

// Options selects optional checks.
type Options struct {
	// AllowFutureVersions accepts any 3.x openapi version
	AllowFutureVersions bool
	// RequireRateLimitHeaders requires rate limit headers on 2XX responses
	RequireRateLimitHeaders bool
}

func (o Options) key() string {
	return "future=" + strconv.FormatBool(o.AllowFutureVersions) +
		",ratelimit=" + strconv.FormatBool(o.RequireRateLimitHeaders)
}

// Validator checks the per-field shape of a document.
type Validator interface {
	Validate(doc any, opts Options) []issues.Issue
}

// Default validates documents against the [OpenAPI] tree. Compiled trees are
// kept in the fragments cache per option set.
type Default struct {
	fragments *cache.Cache[any]
	logger    parser.Logger
}

var _ Validator = (*Default)(nil)

// NewDefault creates a validator that caches compiled fragments in fragments.
// A nil cache compiles on every call.
func NewDefault(fragments *cache.Cache[any], logger parser.Logger) *Default {
	return &Default{fragments: fragments, logger: parser.OrNop(logger)}
}

// Validate implements Validator.
func (d *Default) Validate(doc any, opts Options) []issues.Issue {
	schema, err := d.schema(opts)
	if err != nil {
		d.logger.Error("shape: compile OpenAPI schema tree", "error", err)
		return nil
	}
	found := schema.Validate(doc)
	d.logger.Debug("shape validation complete", "issues", len(found))
	return found
}

func (d *Default) schema(opts Options) (*Schema, error) {
	key := "schema:openapi:" + opts.key()
	if v, ok := d.fragments.Get(key); ok {
		d.logger.Debug("schema cache hit", "key", key)
		return v.(*Schema), nil
	}
	s, err := Compile(OpenAPI(opts), d.fragments)
	if err != nil {
		return nil, err
	}
	d.fragments.Set(key, s)
	return s, nil
}

// Func adapts a function to the Validator interface.
type Func func(doc any, opts Options) []issues.Issue

// Validate implements Validator.
func (f Func) Validate(doc any, opts Options) []issues.Issue {
	return f(doc, opts)
}
