// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaslint validation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"regexp"
	"sync"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oaslint MCP server: validates OpenAPI 3.x documents, resolves internal $ref pointers, and reports issues with source line/column ranges.

Configuration: All defaults are configurable via OASLINT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASLINT_CACHE_ENABLED (default: true): disable result, reference and schema caching
- OASLINT_CACHE_MAX_SIZE (default: 100): entries kept per cache
- OASLINT_VALIDATE_STRICT (default: false): enable structural checks by default
- OASLINT_ALLOW_FUTURE_VERSIONS (default: false): accept openapi versions newer than 3.1
- OASLINT_REQUIRE_RATE_LIMIT_HEADERS (default: false): require X-RateLimit-* headers on 2XX responses
- OASLINT_ISSUE_LIMIT (default: 100): default number of issues returned per call

Caching: validation results are cached per document content and option set. The caches are shared by all calls in the session; use cache_reset to drop them.`

// validateMu serializes access to the process-wide validation caches, which
// are not safe for concurrent use.
var validateMu sync.Mutex

// logger receives debug output from validation runs.
var logger parser.Logger = parser.NewSlogAdapter(slog.Default())

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	validateMu.Lock()
	validator.ConfigureCache(cfg.cacheConfig())
	validateMu.Unlock()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaslint", Version: oaslint.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an OpenAPI 3.x document given as inline content (JSON or YAML) or a file path. Returns validity, the resolved internal $ref pointers, and issues with a code, a JSON path and, when the path exists in the source, a line/column range. Set strict=true to also detect ambiguous path templates and duplicate parameters. Use offset/limit to paginate through issues.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "cache_stats",
		Description: "Report hit, miss, eviction and size counters for the results, refs and fragments caches.",
	}, handleCacheStats)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "cache_reset",
		Description: "Discard all cached validation results, resolved references and compiled schema fragments. Counters are kept.",
	}, handleCacheReset)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.IssueLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
