package main

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	cache "github.com/travpow/set-associative-cache"
)

// scanTable renders every live entry whose key has the given prefix as a
// two-column, space-padded table. Padding is computed with runewidth
// rather than len/utf8.RuneCountInString so keys containing wide runes
// still line up.
func scanTable(c *cache.Cache[string, string], prefix string) string {
	var rows [][2]string
	for it := c.Iterator(); it.HasNext(); {
		e := it.Next()
		if strings.HasPrefix(e.Key(), prefix) {
			rows = append(rows, [2]string{e.Key(), e.Value()})
		}
	}

	if len(rows) == 0 {
		return "(no matching entries)"
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	keyWidth := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > keyWidth {
			keyWidth = w
		}
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r[0])
		b.WriteString(strings.Repeat(" ", keyWidth-runewidth.StringWidth(r[0])+2))
		b.WriteString(r[1])
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
