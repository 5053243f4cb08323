package cache

// Option configures a Cache at construction time.
type Option[K comparable, V any] interface {
	apply(*Cache[K, V])
}

// optionFunc is a helper Option implementation to quickly define new
// options as plain functions.
type optionFunc[K comparable, V any] func(*Cache[K, V])

func (f optionFunc[K, V]) apply(c *Cache[K, V]) { f(c) }

// WithInvalidator selects the eviction policy for every bucket in the
// cache. factory is called once per bucket (numSets times in total), so
// each bucket gets its own independent invalidator; invalidators are never
// shared across buckets. If omitted, the cache defaults to LRU.
func WithInvalidator[K comparable, V any](factory InvalidatorFactory[K, V]) Option[K, V] {
	return optionFunc[K, V](func(c *Cache[K, V]) {
		c.newInvalidator = factory
	})
}

// WithHasher overrides the hash function used to select a key's bucket and
// starting probe index. If omitted, the cache uses defaultHasher.
func WithHasher[K comparable, V any](hasher Hasher[K]) Option[K, V] {
	return optionFunc[K, V](func(c *Cache[K, V]) {
		c.hasher = hasher
	})
}
