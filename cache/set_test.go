package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPartitionsConcerns(t *testing.T) {
	s := NewSet(Config{Enabled: true, MaxSize: 1})
	s.Results.Set("k", "result")
	s.Refs.Set("k", "target")
	s.Refs.Set("k2", "target2")

	// Eviction in Refs leaves Results untouched.
	assert.True(t, s.Results.Has("k"))
	assert.False(t, s.Refs.Has("k"))
	assert.Equal(t, 0, s.Fragments.Len())
}

func TestSetConfigureDiscardsEntries(t *testing.T) {
	s := NewSet(DefaultConfig())
	s.Results.Set("a", 1)
	s.Fragments.Set("b", 2)

	s.Configure(Config{Enabled: true, MaxSize: 5})
	assert.Equal(t, 0, s.Results.Len())
	assert.Equal(t, 0, s.Fragments.Len())
	assert.Equal(t, Config{Enabled: true, MaxSize: 5}, s.Config())

	s.Configure(Config{Enabled: false, MaxSize: 5})
	s.Refs.Set("c", 3)
	assert.False(t, s.Refs.Has("c"))
}

func TestSetReset(t *testing.T) {
	s := NewSet(DefaultConfig())
	s.Refs.Set("a", 1)
	_, _ = s.Refs.Get("a")

	s.Reset()
	assert.Equal(t, 0, s.Refs.Len())
	assert.Equal(t, DefaultConfig(), s.Config())
	assert.Equal(t, uint64(1), s.Stats()[NameRefs].Hits, "counters survive reset")
}

func TestSetNil(t *testing.T) {
	var s *Set
	assert.NotPanics(t, func() {
		s.Configure(DefaultConfig())
		s.Reset()
	})
	assert.Nil(t, s.Stats())
}

func TestDefaultSet(t *testing.T) {
	t.Cleanup(func() { Configure(DefaultConfig()) })

	Default().Results.Set("a", 1)
	Reset()
	assert.Equal(t, 0, Default().Results.Len())

	Configure(Config{Enabled: true, MaxSize: 7})
	assert.Equal(t, 7, Default().Results.Stats().Capacity)
}
