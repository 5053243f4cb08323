package cache

import "fmt"

// Cache is an in-memory, fixed-capacity, N-way set-associative key/value
// cache. Configured with S sets (buckets) and N entries per set, it holds
// at most S*N live entries; a key's set is chosen by hashing the key, and
// a bucket that fills asks its Invalidator to evict a slot before another
// key can take one.
//
// A Cache is not safe for concurrent use by multiple goroutines. Wrap it
// with an external mutex if you need to share it across mutators; the
// zero-allocation guarantees on the Get/Put hot path assume a single
// mutator.
type Cache[K comparable, V any] struct {
	numSets       int
	entriesPerSet int
	buckets       []*bucket[K, V]
	size          int

	hasher         Hasher[K]
	newInvalidator InvalidatorFactory[K, V]
}

// New constructs a Cache with numSets buckets of entriesPerSet slots each.
// Both must be at least 1. By default the cache evicts least-recently-used
// entries and hashes keys with defaultHasher; use WithInvalidator and
// WithHasher to change either.
func New[K comparable, V any](numSets, entriesPerSet int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if numSets < 1 || entriesPerSet < 1 {
		return nil, fmt.Errorf("%w: numSets and entriesPerSet must each be at least 1, got (%d, %d)",
			ErrInvalidConfig, numSets, entriesPerSet)
	}

	c := &Cache[K, V]{
		numSets:       numSets,
		entriesPerSet: entriesPerSet,
	}

	for _, opt := range opts {
		opt.apply(c)
	}

	if c.hasher == nil {
		c.hasher = defaultHasher[K]
	}
	if c.newInvalidator == nil {
		c.newInvalidator = NewLRUInvalidator[K, V]
	}

	c.buckets = make([]*bucket[K, V], numSets)
	for i := range c.buckets {
		c.buckets[i] = newBucket[K, V](entriesPerSet, c.newInvalidator)
	}

	return c, nil
}

// locate hashes key and returns the index of the bucket that owns it.
func (c *Cache[K, V]) locate(key K) (bucketIdx int, hash uint64) {
	hash = c.hasher(key)
	return int(hash % uint64(c.numSets)), hash
}

// startIndex is the slot a probe for hash begins at within a bucket of the
// cache's entriesPerSet.
func (c *Cache[K, V]) startIndex(hash uint64) int {
	return int(hash % uint64(c.entriesPerSet))
}

// Get returns the value stored for key and whether it was present. A hit
// touches the bucket's invalidator; a miss leaves eviction ordering
// unchanged.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V

	bucketIdx, hash := c.locate(key)
	b := c.buckets[bucketIdx]
	start := c.startIndex(hash)

	for idx := start; ; {
		entry := &b.entries[idx]
		if entry.matches(hash, key) {
			b.touch(entry)
			return entry.Value(), true
		}

		idx = (idx + 1) % c.entriesPerSet
		if idx == start {
			return zero, false
		}
	}
}

// ContainsKey reports whether key is present, without touching the
// bucket's invalidator. Use this over Get when you want to test membership
// without affecting eviction order.
func (c *Cache[K, V]) ContainsKey(key K) bool {
	bucketIdx, hash := c.locate(key)
	b := c.buckets[bucketIdx]
	start := c.startIndex(hash)

	for idx := start; ; {
		if b.entries[idx].matches(hash, key) {
			return true
		}

		idx = (idx + 1) % c.entriesPerSet
		if idx == start {
			return false
		}
	}
}

// ContainsValue scans every set slot in every bucket for a value equal to
// the one given. It does not touch any invalidator. Because the cache
// places no ordering or equality constraint on V, equality here is
// reflect.DeepEqual rather than ==; see valueEqual.
func (c *Cache[K, V]) ContainsValue(value V) bool {
	for _, b := range c.buckets {
		for i := range b.entries {
			entry := &b.entries[i]
			if entry.IsSet() && valueEqual(entry.Value(), value) {
				return true
			}
		}
	}
	return false
}

// Put associates value with key, returning the value that was previously
// associated with it, or value itself if key was not already present.
//
// If key's bucket is full, Put first asks the bucket to evict a slot. A
// user-supplied Invalidator that reports it has slots but fails to evict
// one is a contract violation, reported as ErrInvalidation; the cache is
// left unmodified when that happens.
func (c *Cache[K, V]) Put(key K, value V) (V, error) {
	bucketIdx, hash := c.locate(key)
	b := c.buckets[bucketIdx]

	if b.size == c.entriesPerSet {
		if !b.invalidate() {
			var zero V
			return zero, fmt.Errorf("%w: bucket %d reported entries but evicted none", ErrInvalidation, bucketIdx)
		}
		c.size--
	}

	start := c.startIndex(hash)
	var lastUnset *Entry[K, V]

	for idx := start; ; {
		entry := &b.entries[idx]

		if entry.matches(hash, key) {
			b.touch(entry)
			old := entry.Value()
			entry.setValue(value)
			b.touch(entry)
			return old, nil
		}

		if !entry.IsSet() {
			lastUnset = entry
		}

		idx = (idx + 1) % c.entriesPerSet
		if idx == start {
			break
		}
	}

	// The bucket was either not full to begin with, or was just made to
	// evict exactly one slot above, so lastUnset is guaranteed non-nil.
	lastUnset.assign(key, value, hash)
	b.touch(lastUnset)
	b.size++
	c.size++

	return value, nil
}

// Remove deletes key from the cache, returning its previous value and true,
// or the zero value and false if it was not present.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	var zero V

	bucketIdx, hash := c.locate(key)
	b := c.buckets[bucketIdx]
	start := c.startIndex(hash)

	for idx := start; ; {
		entry := &b.entries[idx]
		if entry.matches(hash, key) {
			prev := entry.Value()
			b.remove(entry)
			c.size--
			return prev, true
		}

		idx = (idx + 1) % c.entriesPerSet
		if idx == start {
			return zero, false
		}
	}
}

// Clear empties the cache. Every slot in every bucket is unset and each
// bucket's invalidator and per-bucket count are reset, so every invariant
// holds again immediately: no eviction fires spuriously as buckets refill
// after Clear, unlike an implementation that only unsets slots and resets
// the whole-cache counter.
func (c *Cache[K, V]) Clear() {
	for _, b := range c.buckets {
		for i := range b.entries {
			b.entries[i].Unset()
		}
		b.size = 0
		b.invalidator = c.newInvalidator()
	}
	c.size = 0
}

// Size returns the number of live entries in the cache.
func (c *Cache[K, V]) Size() int { return c.size }

// NumSets returns the number of buckets the cache was constructed with.
func (c *Cache[K, V]) NumSets() int { return c.numSets }

// EntriesPerSet returns the number of slots per bucket the cache was
// constructed with.
func (c *Cache[K, V]) EntriesPerSet() int { return c.entriesPerSet }

// IsEmpty reports whether the cache holds no live entries.
func (c *Cache[K, V]) IsEmpty() bool { return c.size == 0 }

// Keys returns a snapshot slice of every live key, in iteration order.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.size)
	for it := c.Iterator(); it.HasNext(); {
		keys = append(keys, it.Next().Key())
	}
	return keys
}

// Values returns a snapshot slice of every live value, in iteration order.
func (c *Cache[K, V]) Values() []V {
	values := make([]V, 0, c.size)
	for it := c.Iterator(); it.HasNext(); {
		values = append(values, it.Next().Value())
	}
	return values
}

// Entries returns a snapshot slice of every live entry, in iteration order.
func (c *Cache[K, V]) Entries() []Snapshot[K, V] {
	entries := make([]Snapshot[K, V], 0, c.size)
	for it := c.Iterator(); it.HasNext(); {
		entries = append(entries, it.Next())
	}
	return entries
}

func valueEqual[V any](a, b V) bool {
	return deepEqual(a, b)
}
