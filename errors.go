package cache

import "errors"

// Sentinel errors returned by the cache's three error kinds: bad
// construction arguments, a broken Invalidator contract, and a mismatched
// Unwrap target. Use errors.Is to test for any of them.
var (
	// ErrInvalidConfig is returned by New when numSets or entriesPerSet is
	// less than 1.
	ErrInvalidConfig = errors.New("cache: invalid configuration")

	// ErrInvalidation is returned by Put when a full bucket's Invalidator
	// reports it evicted nothing, violating the Invalidator contract.
	ErrInvalidation = errors.New("cache: bucket invalidator failed to evict a slot")

	// ErrIncompatibleEntry is returned by Snapshot.Unwrap when the target
	// does not point to a Snapshot of the same key/value types.
	ErrIncompatibleEntry = errors.New("cache: incompatible entry type")
)
