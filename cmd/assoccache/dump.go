package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	cache "github.com/travpow/set-associative-cache"
)

// dumpCache renders every live entry using go-spew's deep, typed,
// indented struct dump rather than a one-line %v. It walks the same
// live-entries-only path as Entries()/Keys()/Values(); unset slots within
// a bucket are not visible here or anywhere else in the CLI, since the
// cache's public iterator never exposes them.
func dumpCache(c *cache.Cache[string, string]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "sets=%d entriesPerSet=%d size=%d\n", c.NumSets(), c.EntriesPerSet(), c.Size())

	entryIdx := 0
	for it := c.Iterator(); it.HasNext(); {
		snap := it.Next()
		fmt.Fprintf(&b, "--- entry %d ---\n%s", entryIdx, spew.Sdump(snap))
		entryIdx++
	}

	return strings.TrimRight(b.String(), "\n")
}
