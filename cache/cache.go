package cache

import "container/list"

// DefaultMaxSize is the capacity used by DefaultConfig.
const DefaultMaxSize = 100

// Config controls the capacity of a cache.
type Config struct {
	// Enabled turns caching on. A disabled cache always misses.
	Enabled bool `json:"enabled" yaml:"enabled"`
	// MaxSize is the number of entries kept. Values <= 0 disable the cache.
	MaxSize int `json:"maxSize" yaml:"maxSize"`
}

// DefaultConfig returns an enabled config with DefaultMaxSize entries.
func DefaultConfig() Config {
	return Config{Enabled: true, MaxSize: DefaultMaxSize}
}

// active reports whether the config allows any entry to be stored.
func (c Config) active() bool {
	return c.Enabled && c.MaxSize > 0
}

// Stats is a snapshot of cache counters. Counters survive Clear and
// reconfiguration; Entries does not.
type Stats struct {
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
	Entries   int    `json:"entries"`
	Capacity  int    `json:"capacity"`
}

type entry[V any] struct {
	key   string
	value V
}

// Cache is a fixed-capacity key/value store with insertion-order eviction.
// All methods are safe to call on a nil *Cache, which behaves as disabled.
type Cache[V any] struct {
	name  string
	cfg   Config
	order *list.List
	items map[string]*list.Element
	stats Stats
}

// New creates a cache. The name labels the cache in metrics and logs.
func New[V any](name string, cfg Config) *Cache[V] {
	c := &Cache[V]{name: name}
	c.configure(cfg)
	return c
}

// Name returns the cache's label.
func (c *Cache[V]) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Config returns the active configuration.
func (c *Cache[V]) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// Enabled reports whether the cache can store entries.
func (c *Cache[V]) Enabled() bool {
	return c != nil && c.cfg.active()
}

// Get returns the value stored under key. It does not affect eviction order.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	if c == nil {
		return zero, false
	}
	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return zero, false
	}
	c.stats.Hits++
	return el.Value.(*entry[V]).value, true
}

// Has reports whether key is stored. It does not count as a hit or miss.
func (c *Cache[V]) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.items[key]
	return ok
}

// Set stores value under key as the newest entry, evicting the oldest entries
// while the cache is over capacity.
func (c *Cache[V]) Set(key string, value V) {
	if c == nil || !c.cfg.active() {
		return
	}
	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
	c.items[key] = c.order.PushBack(&entry[V]{key: key, value: value})
	for c.order.Len() > c.cfg.MaxSize {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry[V]).key)
		c.stats.Evictions++
	}
}

// Delete removes key if present.
func (c *Cache[V]) Delete(key string) {
	if c == nil {
		return
	}
	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Clear removes every entry.
func (c *Cache[V]) Clear() {
	if c == nil {
		return
	}
	c.order = list.New()
	c.items = make(map[string]*list.Element)
}

// Len returns the number of stored entries.
func (c *Cache[V]) Len() int {
	if c == nil {
		return 0
	}
	return c.order.Len()
}

// Keys returns the stored keys from oldest to newest.
func (c *Cache[V]) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry[V]).key)
	}
	return keys
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[V]) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	s := c.stats
	s.Entries = c.order.Len()
	s.Capacity = c.cfg.MaxSize
	if !c.cfg.active() {
		s.Capacity = 0
	}
	return s
}

// configure discards all entries and applies cfg.
func (c *Cache[V]) configure(cfg Config) {
	c.cfg = cfg
	c.Clear()
}
