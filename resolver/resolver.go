package resolver

import (
	"fmt"

	"github.com/erraggy/oaslint/cache"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/parser"
)

// Record is one resolved pointer. Records are created once per distinct
// pointer per pass and never modified.
type Record struct {
	// Pointer is the reference string as written
	Pointer string
	// Segments are the unescaped pointer segments
	Segments []string
	// Target is the node the pointer resolves to
	Target any
	// Wave is the wave in which the pointer was first queued
	Wave int
	// From is the path of the first mapping found holding this pointer
	From []string
}

// Resolution is the outcome of one resolution pass.
type Resolution struct {
	// Records lists resolved pointers in discovery order
	Records []Record
	// NotFound lists every well-formed pointer whose target is missing
	NotFound []*oaserrors.ReferenceError
}

// Pointers returns the resolved pointer strings in discovery order.
func (r *Resolution) Pointers() []string {
	out := make([]string, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Pointer
	}
	return out
}

// Err returns the first missing-target error, or nil.
func (r *Resolution) Err() error {
	if len(r.NotFound) == 0 {
		return nil
	}
	return r.NotFound[0]
}

// Resolver resolves internal references. A Resolver holds no per-document
// state and may be reused across documents.
type Resolver struct {
	cache       *cache.Cache[any]
	logger      parser.Logger
	fingerprint string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache stores resolved targets in c. A nil or disabled cache turns
// caching off.
func WithCache(c *cache.Cache[any]) Option {
	return func(r *Resolver) { r.cache = c }
}

// WithLogger sets the logger for wave and cache-hit debug output.
func WithLogger(l parser.Logger) Option {
	return func(r *Resolver) { r.logger = parser.OrNop(l) }
}

// WithFingerprint fixes the document fingerprint used in cache keys. Without
// it the fingerprint is computed from the document on every call, which is
// wasteful when calling Lookup repeatedly on one document.
func WithFingerprint(fp string) Option {
	return func(r *Resolver) { r.fingerprint = fp }
}

// New creates a Resolver. By default it does not cache and does not log.
func New(opts ...Option) *Resolver {
	r := &Resolver{logger: parser.NopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type pending struct {
	ref      Ref
	segments []string
}

// Resolve runs a full pass over doc. It returns an error only for a malformed
// pointer, which aborts the pass; missing targets are reported in the
// returned Resolution.
func (r *Resolver) Resolve(doc map[string]any) (*Resolution, error) {
	fp := r.fingerprintFor(doc)
	visited := make(map[string]struct{})
	res := &Resolution{}

	found := Collect(doc)
	for wave := 0; len(found) > 0; wave++ {
		queue := make([]pending, 0, len(found))
		for _, ref := range found {
			if _, seen := visited[ref.Pointer]; seen {
				continue
			}
			visited[ref.Pointer] = struct{}{}
			queue = append(queue, pending{ref: ref})
		}

		for i := range queue {
			segments, err := ParsePointer(queue[i].ref.Pointer)
			if err != nil {
				refErr := err.(*oaserrors.ReferenceError)
				refErr.Path = queue[i].ref.Path
				r.logger.Debug("invalid reference, aborting resolution", "ref", refErr.Ref, "wave", wave)
				return nil, refErr
			}
			queue[i].segments = segments
		}

		if len(queue) > 0 {
			r.logger.Debug("resolving reference wave", "wave", wave, "pointers", len(queue))
		}

		var next []Ref
		for _, p := range queue {
			target, err := r.lookup(doc, fp, p.ref.Pointer, p.segments)
			if err != nil {
				err.Path = p.ref.Path
				res.NotFound = append(res.NotFound, err)
				continue
			}
			res.Records = append(res.Records, Record{
				Pointer:  p.ref.Pointer,
				Segments: p.segments,
				Target:   target,
				Wave:     wave,
				From:     p.ref.Path,
			})
			next = append(next, Collect(target, p.segments...)...)
		}
		found = next
	}

	r.logger.Debug("references resolved", "resolved", len(res.Records), "missing", len(res.NotFound))
	return res, nil
}

// ResolveAll returns the distinct resolved pointers in discovery order. The
// error is the malformed-pointer error that aborted the pass, or the first
// missing target.
func (r *Resolver) ResolveAll(doc map[string]any) ([]string, error) {
	res, err := r.Resolve(doc)
	if err != nil {
		return nil, err
	}
	return res.Pointers(), res.Err()
}

// Lookup resolves a single pointer against doc.
func (r *Resolver) Lookup(doc map[string]any, ptr string) (any, error) {
	segments, err := ParsePointer(ptr)
	if err != nil {
		return nil, err
	}
	target, refErr := r.lookup(doc, r.fingerprintFor(doc), ptr, segments)
	if refErr != nil {
		return nil, refErr
	}
	return target, nil
}

func (r *Resolver) lookup(doc map[string]any, fp, ptr string, segments []string) (any, *oaserrors.ReferenceError) {
	key := fp + "|" + ptr
	if fp != "" {
		if target, ok := r.cache.Get(key); ok {
			r.logger.Debug("reference cache hit", "ref", ptr)
			return target, nil
		}
	}

	target, failed, ok := walk(doc, segments)
	if !ok {
		return nil, &oaserrors.ReferenceError{
			Ref:     ptr,
			Kind:    oaserrors.ReferenceNotFound,
			Segment: segments[failed],
			Message: fmt.Sprintf("segment %q does not exist", segments[failed]),
		}
	}

	if fp != "" {
		r.cache.Set(key, target)
	}
	return target, nil
}

func (r *Resolver) fingerprintFor(doc map[string]any) string {
	if !r.cache.Enabled() {
		return ""
	}
	if r.fingerprint != "" {
		return r.fingerprint
	}
	return cache.Fingerprint(doc)
}
