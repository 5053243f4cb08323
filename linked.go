package cache

import "container/list"

// linkedOrder is the doubly-linked-list substrate shared by LRUInvalidator
// and MRUInvalidator. Both policies track the same recency ordering — a
// list of the bucket's set slots plus a side map from key to list element
// so Touch/Remove can find a slot's node in O(1) instead of walking the
// list — and differ only in which end of the list Invalidate takes its
// victim from.
//
// This mirrors the shard index in the cache this module is built from: a
// container/list.List paired with a map[key]*list.Element, generalized
// here to hold *Entry[K, V] elements instead of arbitrary cached values.
type linkedOrder[K comparable, V any] struct {
	order *list.List
	index map[K]*list.Element
}

func newLinkedOrder[K comparable, V any]() linkedOrder[K, V] {
	return linkedOrder[K, V]{
		order: list.New(),
		index: make(map[K]*list.Element),
	}
}

// touch appends entry at the tail, the most-recently-touched end,
// relinking it first if it was already tracked.
func (o *linkedOrder[K, V]) touch(entry *Entry[K, V]) {
	if el, ok := o.index[entry.key]; ok {
		o.order.MoveToBack(el)
		return
	}
	o.index[entry.key] = o.order.PushBack(entry)
}

func (o *linkedOrder[K, V]) remove(entry *Entry[K, V]) {
	el, ok := o.index[entry.key]
	if !ok {
		return
	}
	o.order.Remove(el)
	delete(o.index, entry.key)
}

// invalidate evicts whichever end of the list victim selects (order.Front
// for LRU, order.Back for MRU).
func (o *linkedOrder[K, V]) invalidate(victim func() *list.Element) bool {
	el := victim()
	if el == nil {
		return false
	}

	entry := el.Value.(*Entry[K, V])
	o.order.Remove(el)
	delete(o.index, entry.key)
	entry.Unset()

	return true
}
