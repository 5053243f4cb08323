package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"hash/fnv"
)

// Hasher computes a hash for a cache key. Cache uses it to pick a bucket
// and a starting probe index; it is called on every Get, Put, ContainsKey,
// and Remove, so a Hasher supplied via WithHasher should be fast and should
// never panic.
type Hasher[K comparable] func(key K) uint64

// defaultHasher is used when the caller does not supply one via
// WithHasher. Because the cache is generic over any comparable key type it
// cannot dispatch to a single fixed hash routine the way a language with a
// universal hashCode() can; instead it type-switches over common concrete
// shapes, from fastest to slowest, and falls back to encoding the key with
// encoding/gob for anything it doesn't recognize. This is the same
// technique — and, for the recognized cases, close to the same code — the
// sharding hash in the cache this module generalizes from uses to turn an
// arbitrary key into bytes.
//
// Integer key kinds are returned as-is (widened to uint64), the same way
// Java's boxed integer types return the int value itself from hashCode().
// This is deliberate, not an oversight: a bucket index is this hash modulo
// numSets, and the cache's own capacity law (inserting S*N*m consecutive
// integer keys fills every bucket to exactly N) only holds if consecutive
// keys spread round-robin across buckets. Running consecutive integers
// through FNV-1a first breaks that round-robin property — nearby integers
// no longer land in nearby-spaced buckets mod S — and leaves some buckets
// permanently under-filled. Everything that isn't an integer kind still
// goes through FNV-1a, which has no such identity to preserve.
func defaultHasher[K comparable](key K) uint64 {
	switch v := any(key).(type) {
	case int:
		return uint64(v)
	case int8:
		return uint64(v)
	case int16:
		return uint64(v)
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	}

	h := fnv.New64a()

	switch v := any(key).(type) {
	case string:
		h.Write([]byte(v))
	case []byte:
		h.Write(v)
	case fmt.Stringer:
		h.Write([]byte(v.String()))
	default:
		// The user is using a key shape the switch above can't see into.
		// Encoding it with gob is at least an order of magnitude slower
		// than the cases above; callers on a hot path with such a key
		// should supply WithHasher instead.
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(v); err != nil {
			panic(fmt.Sprintf("cache: could not hash key of type %T: %v", key, err))
		}
		h.Write(buf.Bytes())
	}

	return h.Sum64()
}
