package resolver

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/erraggy/oaslint/cache"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(ptr string) map[string]any {
	return map[string]any{"$ref": ptr}
}

func petDoc() map[string]any {
	return map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": "Pets", "version": "1.0"},
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{
					"parameters": []any{ref("#/components/parameters/Limit")},
					"responses": map[string]any{
						"200": map[string]any{
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": ref("#/components/schemas/Pets"),
								},
							},
						},
					},
				},
			},
		},
		"components": map[string]any{
			"parameters": map[string]any{
				"Limit": map[string]any{"name": "limit", "in": "query"},
			},
			"schemas": map[string]any{
				"Pets": map[string]any{"type": "array", "items": ref("#/components/schemas/Pet")},
				"Pet":  map[string]any{"type": "object"},
			},
		},
	}
}

func TestResolveAllNoReferences(t *testing.T) {
	doc := map[string]any{"openapi": "3.1.0", "paths": map[string]any{}}

	refs, err := New().ResolveAll(doc)
	require.NoError(t, err)
	assert.Empty(t, refs)
	assert.NotNil(t, refs)
}

func TestResolveAllOrder(t *testing.T) {
	refs, err := New().ResolveAll(petDoc())
	require.NoError(t, err)

	// Wave 0 in sorted-key document order; Pet is also found at wave 0 inside
	// components, so it is never re-queued.
	assert.Equal(t, []string{
		"#/components/schemas/Pet",
		"#/components/parameters/Limit",
		"#/components/schemas/Pets",
	}, refs)
}

func TestResolveRecords(t *testing.T) {
	res, err := New().Resolve(petDoc())
	require.NoError(t, err)
	require.Len(t, res.Records, 3)

	rec := res.Records[1]
	assert.Equal(t, "#/components/parameters/Limit", rec.Pointer)
	assert.Equal(t, []string{"components", "parameters", "Limit"}, rec.Segments)
	assert.Equal(t, map[string]any{"name": "limit", "in": "query"}, rec.Target)
	assert.Equal(t, 0, rec.Wave)
	assert.Equal(t, []string{"paths", "/pets", "get", "parameters", "0"}, rec.From)
	assert.Empty(t, res.NotFound)
	assert.NoError(t, res.Err())
}

func TestResolveCycles(t *testing.T) {
	tests := []struct {
		name   string
		doc    map[string]any
		expect []string
	}{
		{
			name: "two-node cycle",
			doc: map[string]any{
				"a": map[string]any{"next": ref("#/b")},
				"b": map[string]any{"next": ref("#/a")},
			},
			expect: []string{"#/b", "#/a"},
		},
		{
			name: "three-node cycle",
			doc: map[string]any{
				"a": map[string]any{"x": ref("#/b")},
				"b": map[string]any{"x": ref("#/c")},
				"c": map[string]any{"x": ref("#/a")},
			},
			expect: []string{"#/b", "#/c", "#/a"},
		},
		{
			name: "self reference",
			doc: map[string]any{
				"node": map[string]any{"child": ref("#/node")},
			},
			expect: []string{"#/node"},
		},
		{
			name: "pointer to a reference holder",
			doc: map[string]any{
				"a": ref("#/b"),
				"b": ref("#/a"),
			},
			expect: []string{"#/b", "#/a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, err := New().ResolveAll(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, refs)
		})
	}
}

func TestResolveLaterWave(t *testing.T) {
	// The $ref holder's siblings are not walked during collection, so #/y is
	// only discovered by scanning the target of #/x/properties.
	doc := map[string]any{
		"x": map[string]any{
			"$ref":       "#/z",
			"properties": map[string]any{"p": ref("#/y")},
		},
		"y":   map[string]any{},
		"z":   map[string]any{},
		"use": ref("#/x/properties"),
	}

	res, err := New().Resolve(doc)
	require.NoError(t, err)
	require.Len(t, res.Records, 3)

	assert.Equal(t, []string{"#/x/properties", "#/z", "#/y"}, res.Pointers())
	assert.Equal(t, 1, res.Records[2].Wave)
	assert.Equal(t, []string{"x", "properties", "p"}, res.Records[2].From)
}

func TestResolveNotFound(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{
			"/a": map[string]any{"schema": ref("#/components/schemas/Missing")},
			"/b": map[string]any{"schema": ref("#/components/schemas/AlsoMissing")},
		},
		"components": map[string]any{"schemas": map[string]any{}},
	}

	res, err := New().Resolve(doc)
	require.NoError(t, err)
	require.Len(t, res.NotFound, 2, "missing targets accumulate")
	assert.Empty(t, res.Records)

	first := res.NotFound[0]
	assert.Equal(t, "#/components/schemas/Missing", first.Ref)
	assert.Equal(t, "Missing", first.Segment)
	assert.Equal(t, []string{"paths", "/a", "schema"}, first.Path)
	assert.Equal(t, "REFERENCE_NOT_FOUND", first.Code())

	_, err = New().ResolveAll(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrReferenceNotFound))
	assert.Contains(t, err.Error(), "#/components/schemas/Missing")
}

func TestResolveInvalidReferenceFailsFast(t *testing.T) {
	doc := map[string]any{
		"a": ref("#/components/schemas/Missing"),
		"b": ref("notapointer"),
	}

	var buf bytes.Buffer
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	res, err := New(WithLogger(logger)).Resolve(doc)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, oaserrors.ErrInvalidReference))
	assert.False(t, errors.Is(err, oaserrors.ErrReferenceNotFound))

	var refErr *oaserrors.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "notapointer", refErr.Ref)
	assert.Equal(t, []string{"b"}, refErr.Path)
	assert.NotContains(t, buf.String(), "resolving reference wave", "no lookup happens before validation")
}

func TestResolveArrays(t *testing.T) {
	doc := map[string]any{
		"list": []any{"zero", map[string]any{"v": 1}},
		"a":    ref("#/list/1"),
		"b":    ref("#/list/1/v"),
	}
	refs, err := New().ResolveAll(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"#/list/1", "#/list/1/v"}, refs)

	for _, bad := range []string{"#/list/2", "#/list/-1", "#/list/01", "#/list/x", "#/list/0/deeper"} {
		_, err := New().Lookup(doc, bad)
		assert.ErrorIs(t, err, oaserrors.ErrReferenceNotFound, bad)
	}
}

func TestLookup(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{"/a/{id}": map[string]any{"get": "op"}},
		"odd":   map[string]any{"a~b": 1, "": 2},
	}
	r := New()

	v, err := r.Lookup(doc, "#/paths/~1a~1{id}/get")
	require.NoError(t, err)
	assert.Equal(t, "op", v)

	v, err = r.Lookup(doc, "#/odd/a~0b")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = r.Lookup(doc, "#/odd/")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = r.Lookup(doc, "other.yaml#/x")
	assert.ErrorIs(t, err, oaserrors.ErrInvalidReference)
	_, err = r.Lookup(doc, "#/odd/a~2b")
	assert.ErrorIs(t, err, oaserrors.ErrInvalidReference)
}

func TestResolveCache(t *testing.T) {
	c := cache.New[any](cache.NameRefs, cache.DefaultConfig())
	doc := petDoc()
	fp := cache.Fingerprint(doc)

	var buf bytes.Buffer
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	r := New(WithCache(c), WithLogger(logger), WithFingerprint(fp))

	first, err := r.ResolveAll(doc)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Has(fp+"|#/components/schemas/Pet"))
	assert.Zero(t, c.Stats().Hits)

	second, err := r.ResolveAll(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, uint64(3), c.Stats().Hits)
	assert.Contains(t, buf.String(), "reference cache hit")
}

func TestResolveIdempotentWithAndWithoutCache(t *testing.T) {
	doc := petDoc()

	uncached, err := New().ResolveAll(doc)
	require.NoError(t, err)

	r := New(WithCache(cache.New[any](cache.NameRefs, cache.DefaultConfig())))
	for range 2 {
		cached, err := r.ResolveAll(doc)
		require.NoError(t, err)
		assert.Equal(t, uncached, cached)
	}
}

func TestResolveDisabledCache(t *testing.T) {
	c := cache.New[any](cache.NameRefs, cache.Config{Enabled: false, MaxSize: 10})
	_, err := New(WithCache(c)).ResolveAll(petDoc())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Zero(t, c.Stats().Misses, "disabled cache is never consulted")
}
