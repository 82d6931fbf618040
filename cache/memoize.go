package cache

import "fmt"

// KeyFunc derives a cache key from a memoized function's argument.
type KeyFunc[A any] func(A) string

// Memoize wraps a pure function so that results are stored in c. keyFn may be
// nil, in which case the argument is stringified with fmt.Sprint. Results
// computed while c is disabled are returned but not stored.
func Memoize[A, R any](c *Cache[R], fn func(A) R, keyFn KeyFunc[A]) func(A) R {
	if keyFn == nil {
		keyFn = func(a A) string { return fmt.Sprint(a) }
	}
	return func(a A) R {
		key := keyFn(a)
		if v, ok := c.Get(key); ok {
			return v
		}
		v := fn(a)
		c.Set(key, v)
		return v
	}
}
