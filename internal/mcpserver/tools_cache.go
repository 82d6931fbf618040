package mcpserver

import (
	"context"
	"slices"

	"github.com/erraggy/oaslint/cache"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type cacheStatsInput struct{}

type cacheStats struct {
	Name      string `json:"name"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
	Entries   int    `json:"entries"`
	Capacity  int    `json:"capacity"`
}

type cacheStatsOutput struct {
	Enabled bool         `json:"enabled"`
	MaxSize int          `json:"max_size"`
	Caches  []cacheStats `json:"caches"`
}

func handleCacheStats(_ context.Context, _ *mcp.CallToolRequest, _ cacheStatsInput) (*mcp.CallToolResult, cacheStatsOutput, error) {
	validateMu.Lock()
	defer validateMu.Unlock()

	set := cache.Default()
	stats := set.Stats()
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	slices.Sort(names)

	output := cacheStatsOutput{
		Enabled: set.Config().Enabled,
		MaxSize: set.Config().MaxSize,
		Caches:  make([]cacheStats, 0, len(names)),
	}
	for _, name := range names {
		s := stats[name]
		output.Caches = append(output.Caches, cacheStats{
			Name:      name,
			Hits:      s.Hits,
			Misses:    s.Misses,
			Evictions: s.Evictions,
			Entries:   s.Entries,
			Capacity:  s.Capacity,
		})
	}
	return nil, output, nil
}

type cacheResetInput struct{}

type cacheResetOutput struct {
	Cleared int `json:"cleared"`
}

func handleCacheReset(_ context.Context, _ *mcp.CallToolRequest, _ cacheResetInput) (*mcp.CallToolResult, cacheResetOutput, error) {
	validateMu.Lock()
	defer validateMu.Unlock()

	cleared := 0
	for _, s := range cache.Default().Stats() {
		cleared += s.Entries
	}
	cache.Reset()
	return nil, cacheResetOutput{Cleared: cleared}, nil
}
