package cache

// Entry is a pre-allocated slot inside a bucket. The cache never allocates
// or frees an Entry after construction; it only overwrites the contents of
// one that is already there. Its storage identity — the pointer a caller or
// an Invalidator holds — stays valid for the lifetime of the Cache even as
// the key/value it carries turns over many times.
type Entry[K comparable, V any] struct {
	set   bool
	key   K
	value V
	hash  uint64
}

// IsSet reports whether the slot currently holds a live entry.
func (e *Entry[K, V]) IsSet() bool { return e.set }

// Key returns the entry's key. Only meaningful when IsSet reports true.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's value. Only meaningful when IsSet reports true.
func (e *Entry[K, V]) Value() V { return e.value }

// Hash returns the cached hash of the key, computed once at assignment time
// so probes can reject a non-matching slot without re-hashing or comparing
// keys.
func (e *Entry[K, V]) Hash() uint64 { return e.hash }

// Unset clears the slot and drops its references to the previous key and
// value so their storage can be reclaimed. Invalidators call this directly
// as part of Invalidate; the bucket calls it directly as part of a plain
// remove. A slot may be unset and reassigned any number of times over the
// life of the cache.
func (e *Entry[K, V]) Unset() {
	var zeroK K
	var zeroV V
	e.key = zeroK
	e.value = zeroV
	e.hash = 0
	e.set = false
}

// assign populates all four fields of a previously-unset slot in one step.
func (e *Entry[K, V]) assign(key K, value V, hash uint64) {
	e.key = key
	e.value = value
	e.hash = hash
	e.set = true
}

// setValue updates only the value, leaving key, hash, and the set flag
// untouched. Used by Cache.Put on the update path.
func (e *Entry[K, V]) setValue(v V) {
	e.value = v
}

// matches reports whether this slot, if set, holds the given key. The hash
// comparison is checked first so two keys that land in the same slot by
// coincidence of index are rejected cheaply, without a key comparison, the
// overwhelming majority of the time.
func (e *Entry[K, V]) matches(hash uint64, key K) bool {
	return e.set && e.hash == hash && e.key == key
}
