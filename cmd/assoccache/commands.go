package main

import (
	"fmt"
	"strings"

	cache "github.com/travpow/set-associative-cache"
	"github.com/travpow/set-associative-cache/internal/config"
	"github.com/travpow/set-associative-cache/snapshot"
)

// buildCache constructs a Cache[string,string] using the eviction policy
// named in cfg. The three policy names are the only ones config.Load
// accepts, so the default case here is unreachable in practice; it exists
// so adding a fourth policy name without a matching case here is a compile
// that still runs, not a silent misconfiguration.
func buildCache(cfg config.Config) (*cache.Cache[string, string], error) {
	var opt cache.Option[string, string]

	switch cfg.Policy {
	case config.PolicyLRU:
		opt = cache.WithInvalidator[string, string](cache.NewLRUInvalidator[string, string])
	case config.PolicyMRU:
		opt = cache.WithInvalidator[string, string](cache.NewMRUInvalidator[string, string])
	case config.PolicySmallest:
		opt = cache.WithInvalidator[string, string](cache.NewSmallestValueInvalidator[string, string])
	default:
		return nil, fmt.Errorf("unrecognized policy %q", cfg.Policy)
	}

	return cache.New[string, string](cfg.Sets, cfg.EntriesPerSet, opt)
}

func loadSnapshot(c *cache.Cache[string, string], path string) error {
	loaded, err := snapshot.LoadFile[string, string](path)
	if err != nil {
		return err
	}
	for _, e := range loaded.Entries() {
		if _, err := c.Put(e.Key(), e.Value()); err != nil {
			return err
		}
	}
	return nil
}

// execOnce runs a single command and prints its result, for non-interactive
// use: `assoccache get foo`.
func execOnce(c *cache.Cache[string, string], args []string) error {
	name, rest := strings.ToLower(args[0]), args[1:]
	out, err := dispatch(c, name, rest)
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Println(out)
	}
	return nil
}

// dispatch runs one command against c and returns its textual result. It is
// shared between the one-shot CLI path and the REPL so the two surfaces
// never drift.
func dispatch(c *cache.Cache[string, string], name string, args []string) (string, error) {
	switch name {
	case "get":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: get <key>")
		}
		v, ok := c.Get(args[0])
		if !ok {
			return fmt.Sprintf("(no entry for %q)", args[0]), nil
		}
		return v, nil

	case "put":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: put <key> <value>")
		}
		old, err := c.Put(args[0], args[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ok (previous value: %q)", old), nil

	case "remove", "rm":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: remove <key>")
		}
		v, ok := c.Remove(args[0])
		if !ok {
			return fmt.Sprintf("(no entry for %q)", args[0]), nil
		}
		return fmt.Sprintf("removed (value was %q)", v), nil

	case "contains":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: contains <key>")
		}
		return fmt.Sprintf("%v", c.ContainsKey(args[0])), nil

	case "scan":
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		return scanTable(c, prefix), nil

	case "dump":
		return dumpCache(c), nil

	case "diff":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: diff <snapshot-a> <snapshot-b>")
		}
		return diffSnapshots(args[0], args[1])

	case "save":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: save <path>")
		}
		if err := snapshot.SaveFile(args[0], c); err != nil {
			return "", err
		}
		return "saved", nil

	case "load":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: load <path>")
		}
		if err := loadSnapshot(c, args[0]); err != nil {
			return "", err
		}
		return "loaded", nil

	case "size":
		return fmt.Sprintf("%d", c.Size()), nil

	case "clear":
		c.Clear()
		return "cleared", nil

	default:
		return "", fmt.Errorf("unknown command: %s", name)
	}
}
