package cache

// bucket is one of the cache's S sets: a fixed array of N pre-allocated
// slots plus the invalidator that owns eviction ordering for those slots.
// The slice backing entries is allocated once, at bucket construction, and
// never grown or shrunk — a *Entry handed to an Invalidator stays valid for
// the bucket's lifetime.
type bucket[K comparable, V any] struct {
	entries     []Entry[K, V]
	invalidator Invalidator[K, V]
	size        int
}

func newBucket[K comparable, V any](entriesPerSet int, newInvalidator InvalidatorFactory[K, V]) *bucket[K, V] {
	return &bucket[K, V]{
		entries:     make([]Entry[K, V], entriesPerSet),
		invalidator: newInvalidator(),
	}
}

// touch informs the bucket's invalidator of recent use, or first use, of
// entry.
func (b *bucket[K, V]) touch(entry *Entry[K, V]) {
	b.invalidator.Touch(entry)
}

// remove drops entry from the invalidator, unsets it, and adjusts size. Used
// on the explicit-removal path; eviction goes through invalidate instead.
func (b *bucket[K, V]) remove(entry *Entry[K, V]) {
	b.invalidator.Remove(entry)
	entry.Unset()
	b.size--
}

// invalidate asks the bucket's invalidator to pick and unset one slot. It
// reports whether a slot was freed.
func (b *bucket[K, V]) invalidate() bool {
	if !b.invalidator.Invalidate() {
		return false
	}
	b.size--
	return true
}
