package cache

import "testing"

func TestLRUInvalidatorOrdering(t *testing.T) {
	inv := NewLRUInvalidator[string, int]()

	a := &Entry[string, int]{}
	a.assign("a", 1, 1)
	b := &Entry[string, int]{}
	b.assign("b", 2, 2)
	c := &Entry[string, int]{}
	c.assign("c", 3, 3)

	inv.Touch(a)
	inv.Touch(b)
	inv.Touch(c)

	// Re-touching a moves it to the tail, so b becomes least recent.
	inv.Touch(a)

	if !inv.Invalidate() {
		t.Fatal("Invalidate on non-empty index returned false")
	}
	if b.IsSet() {
		t.Fatal("expected b (now least recently touched) to be evicted")
	}
	if !a.IsSet() || !c.IsSet() {
		t.Fatal("a and c should still be set")
	}

	if !inv.Invalidate() {
		t.Fatal("Invalidate on non-empty index returned false")
	}
	if c.IsSet() {
		t.Fatal("expected c to be evicted next")
	}

	if !inv.Invalidate() {
		t.Fatal("Invalidate on non-empty index returned false")
	}
	if a.IsSet() {
		t.Fatal("expected a to be evicted last")
	}

	if inv.Invalidate() {
		t.Fatal("Invalidate on empty index returned true")
	}
}

func TestLRUInvalidatorRemove(t *testing.T) {
	inv := NewLRUInvalidator[string, int]()

	a := &Entry[string, int]{}
	a.assign("a", 1, 1)
	b := &Entry[string, int]{}
	b.assign("b", 2, 2)

	inv.Touch(a)
	inv.Touch(b)
	inv.Remove(a)
	a.Unset()

	// Removing an absent entry is a no-op, not a panic.
	inv.Remove(a)

	if !inv.Invalidate() {
		t.Fatal("Invalidate returned false after Remove left b tracked")
	}
	if b.IsSet() {
		t.Fatal("expected b to be the only remaining tracked entry")
	}
}
