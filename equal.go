package cache

import "reflect"

// deepEqual backs ContainsValue. The cache places no constraint on V beyond
// any, so it cannot compare two values with == the way Entry.matches
// compares two keys of the comparable-constrained K; reflect.DeepEqual is
// the general stdlib equivalent, and covers the "physically the same or
// equal" test the spec describes for pointer- and interface-shaped values
// (DeepEqual short-circuits on identical pointers before it recurses).
func deepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
