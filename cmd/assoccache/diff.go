package main

import (
	"fmt"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	cache "github.com/travpow/set-associative-cache"
	"github.com/travpow/set-associative-cache/snapshot"
)

// diffSnapshots loads two snapshot files and returns a unified diff of
// their key/value pairs, sorted by key so the diff is stable regardless of
// each snapshot's internal iteration order.
func diffSnapshots(pathA, pathB string) (string, error) {
	a, err := snapshot.LoadFile[string, string](pathA)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", pathA, err)
	}
	b, err := snapshot.LoadFile[string, string](pathB)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", pathB, err)
	}

	diff := difflib.UnifiedDiff{
		A:        sortedLines(a),
		B:        sortedLines(b),
		FromFile: pathA,
		ToFile:   pathB,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("computing diff: %w", err)
	}
	if text == "" {
		return "(snapshots are identical)", nil
	}
	return text, nil
}

func sortedLines(c *cache.Cache[string, string]) []string {
	lines := make([]string, 0, c.Size())
	for _, e := range c.Entries() {
		lines = append(lines, fmt.Sprintf("%s=%s\n", e.Key(), e.Value()))
	}
	sort.Strings(lines)
	return lines
}
