package cache

// Cache names used as metric labels.
const (
	NameResults   = "results"
	NameRefs      = "refs"
	NameFragments = "fragments"
)

// Set groups the three caches used during validation.
type Set struct {
	// Results holds whole validation results.
	Results *Cache[any]
	// Refs holds resolved reference targets.
	Refs *Cache[any]
	// Fragments holds compiled schema fragments and memoized checks.
	Fragments *Cache[any]
}

// NewSet creates a set whose three caches share cfg.
func NewSet(cfg Config) *Set {
	return &Set{
		Results:   New[any](NameResults, cfg),
		Refs:      New[any](NameRefs, cfg),
		Fragments: New[any](NameFragments, cfg),
	}
}

// Configure discards every entry and applies cfg to all three caches.
func (s *Set) Configure(cfg Config) {
	if s == nil {
		return
	}
	for _, c := range s.all() {
		c.configure(cfg)
	}
}

// Reset discards every entry and keeps the current configuration.
func (s *Set) Reset() {
	if s == nil {
		return
	}
	for _, c := range s.all() {
		c.Clear()
	}
}

// Config returns the configuration shared by the set's caches.
func (s *Set) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.Results.Config()
}

// Stats returns a snapshot per cache name.
func (s *Set) Stats() map[string]Stats {
	if s == nil {
		return nil
	}
	out := make(map[string]Stats, 3)
	for _, c := range s.all() {
		out[c.Name()] = c.Stats()
	}
	return out
}

func (s *Set) all() []*Cache[any] {
	return []*Cache[any]{s.Results, s.Refs, s.Fragments}
}

var defaultSet = NewSet(DefaultConfig())

// Default returns the process-wide set.
func Default() *Set {
	return defaultSet
}

// Configure reconfigures the process-wide set, discarding all entries.
func Configure(cfg Config) {
	defaultSet.Configure(cfg)
}

// Reset discards all entries in the process-wide set.
func Reset() {
	defaultSet.Reset()
}
