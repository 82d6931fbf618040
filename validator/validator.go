package validator

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/erraggy/oaslint/analyzer"
	"github.com/erraggy/oaslint/cache"
	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/resolver"
	"github.com/erraggy/oaslint/shape"
)

// Issue represents a single validation finding.
type Issue = issues.Issue

// Issue codes.
const (
	CodeInvalidReference        = issues.CodeInvalidReference
	CodeReferenceNotFound       = issues.CodeReferenceNotFound
	CodeAmbiguousPathTemplate   = issues.CodeAmbiguousPathTemplate
	CodeDuplicateParameter      = issues.CodeDuplicateParameter
	CodeRequired                = issues.CodeRequired
	CodeInvalidType             = issues.CodeInvalidType
	CodeInvalidValue            = issues.CodeInvalidValue
	CodeInvalidFormat           = issues.CodeInvalidFormat
	CodeUnsupportedVersion      = issues.CodeUnsupportedVersion
	CodeMissingRateLimitHeaders = issues.CodeMissingRateLimitHeaders
)

// Result contains the results of validating a document
type Result struct {
	// Valid is true when no issues were found
	Valid bool `json:"valid"`
	// ResolvedRefs lists every resolved internal pointer in discovery order
	ResolvedRefs []string `json:"resolvedRefs"`
	// Issues lists shape issues first, then structural, then reference issues
	Issues []Issue `json:"issues"`
}

// clone returns a deep copy so cached results are never handed out directly.
func (r *Result) clone() *Result {
	out := &Result{
		Valid:        r.Valid,
		ResolvedRefs: append([]string{}, r.ResolvedRefs...),
		Issues:       issues.CloneAll(r.Issues),
	}
	if out.Issues == nil {
		out.Issues = []Issue{}
	}
	return out
}

// ValidateDocument validates a decoded document. Validation problems are
// reported as issues in the Result; the error is non-nil only for a nil
// document or an invalid option.
func ValidateDocument(doc map[string]any, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, &oaserrors.ConfigError{Option: "document", Message: "must not be nil"}
	}
	return validate(doc, cfg), nil
}

// ValidateDocumentText parses JSON or YAML text and validates the result.
// Each issue whose path exists in the text carries its source Range.
// Parse failures are returned as *oaserrors.ParseError.
func ValidateDocumentText(text []byte, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.ParseText(text)
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}

	result := validate(parsed.Document, cfg)
	loc := parsed.Locator()
	if loc == nil {
		return result, nil
	}
	located := 0
	for i := range result.Issues {
		if rng, ok := loc.Locate(result.Issues[i].Path); ok {
			result.Issues[i].Range = &rng
			located++
		}
	}
	cfg.logger.Debug("issue locations attached",
		"format", string(parsed.Format),
		"located", located,
		"issues", len(result.Issues))
	return result, nil
}

// ConfigureCache reconfigures the process-wide caches, discarding all entries.
func ConfigureCache(cfg cache.Config) {
	cache.Configure(cfg)
}

// ResetCache discards all entries in the process-wide caches.
func ResetCache() {
	cache.Reset()
}

func validate(doc map[string]any, cfg *validateConfig) *Result {
	log := cfg.logger.With("run_id", uuid.NewString())
	caches := cfg.caches
	cacheable := cfg.shape == nil && caches.Results.Enabled()

	var fp, key string
	if caches.Results.Enabled() || caches.Refs.Enabled() {
		fp = cache.Fingerprint(doc)
		key = fp + "|" + cfg.key()
	}
	if cacheable {
		if v, ok := caches.Results.Get(key); ok {
			log.Debug("validation result cache hit")
			return v.(*Result).clone()
		}
	}
	log.Debug("validation started", "strict", cfg.strict)

	sv := cfg.shape
	if sv == nil {
		sv = shape.NewDefault(caches.Fragments, log)
	}
	found := sv.Validate(doc, cfg.shapeOptions())

	res := resolver.New(
		resolver.WithCache(caches.Refs),
		resolver.WithLogger(log),
		resolver.WithFingerprint(fp),
	)
	if cfg.strict {
		found = append(found, analyzer.TemplateIssues(doc)...)
		found = append(found, analyzer.NewParameterChecker(res).CheckDocument(doc)...)
	}

	refs, refIssues := verifyReferences(res, doc)
	found = append(found, refIssues...)

	result := &Result{
		Valid:        len(found) == 0,
		ResolvedRefs: refs,
		Issues:       found,
	}
	if result.Issues == nil {
		result.Issues = []Issue{}
	}
	log.Debug("validation complete",
		"valid", result.Valid,
		"issues", len(result.Issues),
		"resolved_refs", len(result.ResolvedRefs))

	if cacheable {
		caches.Results.Set(key, result.clone())
	}
	return result
}

// verifyReferences resolves every reference in doc. A malformed pointer
// yields a single issue and no resolved pointers.
func verifyReferences(res *resolver.Resolver, doc map[string]any) ([]string, []Issue) {
	resolution, err := res.Resolve(doc)
	if err != nil {
		var refErr *oaserrors.ReferenceError
		if errors.As(err, &refErr) {
			return []string{}, []Issue{referenceIssue(refErr)}
		}
		return []string{}, []Issue{issues.New(nil, issues.CodeInvalidReference, err.Error())}
	}

	var out []Issue
	for _, refErr := range resolution.NotFound {
		out = append(out, referenceIssue(refErr))
	}
	return resolution.Pointers(), out
}

func referenceIssue(err *oaserrors.ReferenceError) Issue {
	msg := fmt.Sprintf("reference %q not found", err.Ref)
	if err.Kind == oaserrors.ReferenceInvalid {
		msg = fmt.Sprintf("invalid reference %q", err.Ref)
	}
	if err.Message != "" {
		msg += ": " + err.Message
	}
	if err.Cause != nil {
		msg += ": " + err.Cause.Error()
	}
	return issues.New(err.Path, err.Code(), msg)
}
