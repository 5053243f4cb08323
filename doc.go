// Package cache offers an in-memory, fixed-capacity, N-way set-associative
// key/value cache with a pluggable eviction policy per bucket.
//
// Cache splits its capacity into S sets (buckets) of N entries each, so it
// holds at most S*N live entries at once. A key's bucket is chosen by
// hashing the key; within a bucket, entries live in a fixed, pre-allocated
// slot array probed by open addressing, so distinct keys that hash to the
// same bucket coexist up to N of them before anything is evicted.
//
// Initialization
//
// The zero value is not usable; construct with New, which requires both
// dimensions to be at least 1:
//
//	c, err := cache.New[string, int](16, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.Put("hello", 1)
//	if v, ok := c.Get("hello"); ok {
//	    log.Println(v)
//	}
//
// By default a bucket evicts its least-recently-used entry when full. Pass
// WithInvalidator to choose most-recently-used or smallest-value instead:
//
//	c, err := cache.New[string, int](16, 4,
//	    cache.WithInvalidator[string, int](cache.NewMRUInvalidator[string, int]))
//
// Hashing
//
// By default a key is hashed with a small built-in type switch covering
// strings, byte slices, the fixed-width integer types, and anything
// implementing fmt.Stringer, falling back to gob-encoding the key for
// anything else. Supply WithHasher for a key type this can't see into, or
// simply for a faster hash of a type it can:
//
//	c, err := cache.New[myKey, int](16, 4, cache.WithHasher[myKey, int](myKey.hash))
//
// Eviction policies
//
// LRUInvalidator and MRUInvalidator share a doubly-linked recency list and
// evict from opposite ends of it. SmallestValueInvalidator keeps a min-heap
// over the bucket's values and requires V to satisfy cmp.Ordered:
//
//	c, err := cache.New[string, int](16, 4,
//	    cache.WithInvalidator[string, int](cache.NewSmallestValueInvalidator[string, int]))
//
// Callers needing a policy this package doesn't provide can implement
// Invalidator directly; WithInvalidator accepts any InvalidatorFactory.
//
// Iteration
//
// Keys, Values, and Entries collect a snapshot slice via the same Iterator
// the cache exposes directly:
//
//	for it := c.Iterator(); it.HasNext(); {
//	    entry := it.Next()
//	    log.Println(entry.Key(), entry.Value())
//	}
package cache
