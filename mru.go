package cache

// MRUInvalidator evicts the most recently touched slot in a bucket. It
// shares LRUInvalidator's doubly-linked-list substrate and Touch/Remove
// behavior; the only difference is which end of the list Invalidate takes
// its victim from.
type MRUInvalidator[K comparable, V any] struct {
	linkedOrder[K, V]
}

// NewMRUInvalidator constructs an empty MRU invalidator.
func NewMRUInvalidator[K comparable, V any]() Invalidator[K, V] {
	return &MRUInvalidator[K, V]{linkedOrder: newLinkedOrder[K, V]()}
}

func (inv *MRUInvalidator[K, V]) Touch(entry *Entry[K, V]) { inv.touch(entry) }

func (inv *MRUInvalidator[K, V]) Remove(entry *Entry[K, V]) { inv.remove(entry) }

// Invalidate evicts the tail of the list, i.e. the entry most recently
// touched.
func (inv *MRUInvalidator[K, V]) Invalidate() bool {
	return inv.invalidate(inv.order.Back)
}
