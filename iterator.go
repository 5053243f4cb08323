package cache

import "fmt"

// Snapshot is a copied view of one entry, taken at the moment an Iterator
// yielded it. Because a bucket can reuse the slot backing an entry as soon
// as the cache is mutated again, Snapshot copies out Key, Value, Hash, and
// IsSet rather than referencing the live slot.
type Snapshot[K comparable, V any] struct {
	key   K
	value V
	hash  uint64
	set   bool
}

func (s Snapshot[K, V]) Key() K      { return s.key }
func (s Snapshot[K, V]) Value() V    { return s.value }
func (s Snapshot[K, V]) Hash() uint64 { return s.hash }
func (s Snapshot[K, V]) IsSet() bool { return s.set }

// Unwrap copies this snapshot into target, which must be a
// *Snapshot[K, V] of the same key and value types. Any other target type
// fails with ErrIncompatibleEntry. Unwrap exists so an Invalidator that
// only sees a caller-supplied snapshot through some narrower interface can
// still ask for the concrete type back out; it always succeeds for the
// only concrete type this package hands out.
func (s Snapshot[K, V]) Unwrap(target any) error {
	dst, ok := target.(*Snapshot[K, V])
	if !ok {
		return fmt.Errorf("%w: cannot unwrap into %T", ErrIncompatibleEntry, target)
	}
	*dst = s
	return nil
}

// Iterator walks a Cache's set slots, bucket by bucket and, within a
// bucket, slot by slot, skipping unset slots. It starts positioned before
// the first entry.
type Iterator[K comparable, V any] struct {
	cache     *Cache[K, V]
	bucketIdx int
	entryIdx  int
}

// Iterator returns a new Iterator positioned before the cache's first
// entry. The cache must not be mutated while the iterator is in use.
func (c *Cache[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{cache: c}
}

// HasNext reports whether a call to Next would yield another entry,
// advancing the cursor past any unset slots and exhausted buckets to find
// out.
func (it *Iterator[K, V]) HasNext() bool {
	it.advance()
	return it.bucketIdx < len(it.cache.buckets)
}

// Next returns a snapshot of the current entry and advances past it.
// Callers must check HasNext first; calling Next past the end panics with
// an index-out-of-range, the same as ranging past a slice's length would.
func (it *Iterator[K, V]) Next() Snapshot[K, V] {
	it.advance()

	entry := &it.cache.buckets[it.bucketIdx].entries[it.entryIdx]
	snap := Snapshot[K, V]{
		key:   entry.Key(),
		value: entry.Value(),
		hash:  entry.Hash(),
		set:   entry.IsSet(),
	}

	it.entryIdx++

	return snap
}

// advance moves the cursor forward, if necessary, until it rests on a set
// slot or runs off the end of the bucket array.
func (it *Iterator[K, V]) advance() {
	buckets := it.cache.buckets

	for it.bucketIdx < len(buckets) {
		b := buckets[it.bucketIdx]

		if it.entryIdx >= len(b.entries) {
			it.bucketIdx++
			it.entryIdx = 0
			continue
		}

		if !b.entries[it.entryIdx].IsSet() {
			it.entryIdx++
			continue
		}

		return
	}
}
