package cache

// Invalidator is the pluggable per-bucket eviction policy. A bucket owns
// exactly one Invalidator for its whole lifetime; the Invalidator never
// owns the slots it tracks, it only records their membership in whatever
// ordering the policy cares about.
//
// Touch, Remove, and Invalidate must stay in lock-step with the slot table:
// after Touch(e), e is a member of the index; after Remove(e) or a
// successful Invalidate, it is not. Invalidate returning false means the
// index is empty.
//
// Implementations are free to keep their own bookkeeping (a linked list, a
// heap, a side map) but must not retain a slot after calling its Unset —
// once Unset is called the slot no longer belongs to this Invalidator.
type Invalidator[K comparable, V any] interface {
	// Touch records that entry is newly the most-relevant candidate under
	// this policy. Touching an already-tracked entry updates its ordering
	// rather than duplicating its membership.
	Touch(entry *Entry[K, V])

	// Remove drops entry from the index if present. A no-op if absent.
	Remove(entry *Entry[K, V])

	// Invalidate evicts one tracked entry, if any: it selects a victim per
	// the policy, calls the victim's Unset, drops it from the index, and
	// reports true. If the index is empty it reports false and changes
	// nothing.
	Invalidate() bool
}

// InvalidatorFactory builds one Invalidator. The Cache constructor calls it
// once per bucket, so every bucket gets its own independent instance — an
// Invalidator is never shared across buckets.
type InvalidatorFactory[K comparable, V any] func() Invalidator[K, V]
