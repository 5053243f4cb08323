package cache

import "testing"

func TestBucketTouchRemoveInvalidate(t *testing.T) {
	b := newBucket[string, int](2, func() Invalidator[string, int] { return NewLRUInvalidator[string, int]() })

	e0 := &b.entries[0]
	e0.assign("a", 1, 0)
	b.touch(e0)
	b.size++

	e1 := &b.entries[1]
	e1.assign("b", 2, 1)
	b.touch(e1)
	b.size++

	if b.size != 2 {
		t.Fatalf("size = %d, want 2", b.size)
	}

	if !b.invalidate() {
		t.Fatal("invalidate() on a full bucket returned false")
	}
	if b.size != 1 {
		t.Fatalf("size = %d after invalidate, want 1", b.size)
	}
	if e0.IsSet() {
		t.Fatal("expected the least-recently-touched entry (a) to be evicted")
	}
	if !e1.IsSet() {
		t.Fatal("expected b to survive")
	}

	b.remove(e1)
	if b.size != 0 {
		t.Fatalf("size = %d after remove, want 0", b.size)
	}
	if e1.IsSet() {
		t.Fatal("remove did not unset the entry")
	}

	if b.invalidate() {
		t.Fatal("invalidate() on an empty bucket returned true")
	}
}
