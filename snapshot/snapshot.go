// Package snapshot persists a cache's contents to and from a gob-encoded
// blob. It is written entirely against the cache's public surface: it
// never reaches into bucket, slot, or invalidator internals, and the cache
// package itself never imports it.
package snapshot

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"

	cache "github.com/travpow/set-associative-cache"
)

// pair is the on-disk shape of one live entry.
type pair[K comparable, V any] struct {
	Key   K
	Value V
}

// onDisk is the full on-disk shape: the cache's shape plus its entries, in
// iteration order.
type onDisk[K comparable, V any] struct {
	Sets          int
	EntriesPerSet int
	Entries       []pair[K, V]
}

// Save walks c's iterator and gob-encodes its shape and entries to w.
func Save[K comparable, V any](w io.Writer, c *cache.Cache[K, V]) error {
	data := collect(c)
	if err := gob.NewEncoder(w).Encode(&data); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// SaveFile encodes c the same way Save does, then writes the result to path
// atomically: a crash or concurrent reader never observes a partial file.
func SaveFile[K comparable, V any](path string, c *cache.Cache[K, V]) error {
	var buf bytes.Buffer
	if err := Save(&buf, c); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	return nil
}

// Load decodes a snapshot produced by Save or SaveFile and replays it as
// Put calls into a freshly constructed cache built with the decoded shape.
// Pass opts to pick a non-default invalidator or hasher for the rebuilt
// cache; shape (sets, entriesPerSet) always comes from the snapshot.
func Load[K comparable, V any](r io.Reader, opts ...cache.Option[K, V]) (*cache.Cache[K, V], error) {
	var data onDisk[K, V]
	if err := gob.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}

	c, err := cache.New[K, V](data.Sets, data.EntriesPerSet, opts...)
	if err != nil {
		return nil, fmt.Errorf("snapshot: rebuilding cache from decoded shape: %w", err)
	}

	for _, p := range data.Entries {
		if _, err := c.Put(p.Key, p.Value); err != nil {
			return nil, fmt.Errorf("snapshot: replaying entry %v: %w", p.Key, err)
		}
	}

	return c, nil
}

// LoadFile opens path and decodes it the same way Load does.
func LoadFile[K comparable, V any](path string, opts ...cache.Option[K, V]) (*cache.Cache[K, V], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer f.Close()
	return Load[K, V](f, opts...)
}

func collect[K comparable, V any](c *cache.Cache[K, V]) onDisk[K, V] {
	entries := c.Entries()
	data := onDisk[K, V]{
		Sets:          c.NumSets(),
		EntriesPerSet: c.EntriesPerSet(),
		Entries:       make([]pair[K, V], len(entries)),
	}
	for i, e := range entries {
		data.Entries[i] = pair[K, V]{Key: e.Key(), Value: e.Value()}
	}
	return data
}
