package cache_test

import (
	"fmt"
	"testing"

	cache "github.com/travpow/set-associative-cache"
)

// TestInsertionFillsExactlyCapacityAcrossShapes exercises the cache across a
// spread of set/slot-per-set shapes and insertion counts, checking that
// inserting S*N*m distinct, round-robin-over-buckets integer keys leaves
// size at exactly numSets*entriesPerSet, that iteration never yields a
// duplicate key, and that every key Iterator reports as present agrees with
// what Get returns for it.
func TestInsertionFillsExactlyCapacityAcrossShapes(t *testing.T) {
	shapes := []struct{ sets, perSet int }{
		{1, 1}, {1, 7}, {3, 1}, {4, 4}, {7, 3}, {16, 4}, {32, 1}, {1, 32}, {5, 5},
	}
	multipliers := []int{1, 2, 5, 10}

	for _, shape := range shapes {
		for _, m := range multipliers {
			name := fmt.Sprintf("sets=%d/perSet=%d/x%d", shape.sets, shape.perSet, m)
			t.Run(name, func(t *testing.T) {
				c, err := cache.New[int, int](shape.sets, shape.perSet)
				if err != nil {
					t.Fatalf("New: %v", err)
				}

				capacity := shape.sets * shape.perSet
				insertions := capacity * m

				for i := 0; i < insertions; i++ {
					if _, err := c.Put(i, i*i); err != nil {
						t.Fatalf("Put(%d): %v", i, err)
					}
				}

				if c.Size() != capacity {
					t.Fatalf("Size() = %d, want exactly %d (capacity) after inserting %d distinct keys", c.Size(), capacity, insertions)
				}

				seen := make(map[int]bool, c.Size())
				for it := c.Iterator(); it.HasNext(); {
					snap := it.Next()
					if seen[snap.Key()] {
						t.Fatalf("duplicate key %d in iteration", snap.Key())
					}
					seen[snap.Key()] = true

					got, ok := c.Get(snap.Key())
					if !ok {
						t.Fatalf("Get(%d) missed a key the iterator just yielded", snap.Key())
					}
					if got != snap.Value() {
						t.Fatalf("Get(%d) = %d, iterator snapshot had %d", snap.Key(), got, snap.Value())
					}
				}

				if len(seen) != c.Size() {
					t.Fatalf("iteration yielded %d distinct keys, Size() reports %d", len(seen), c.Size())
				}
			})
		}
	}
}
