// assoccache is an operator CLI and REPL for the set-associative cache
// package: it builds a Cache[string,string] from flags and an optional
// config file, then either runs a one-shot subcommand or drops into an
// interactive session against it.
//
// Usage:
//
//	assoccache [flags] [command [args...]]
//
// Flags:
//
//	--sets int             number of buckets (default from config/defaults)
//	--entries-per-set int  slots per bucket (default from config/defaults)
//	--policy string        lru | mru | smallest (default from config/defaults)
//	--config string        path to a JSONC or YAML config file
//	--snapshot string      snapshot file to load at startup
//
// Commands (one-shot or inside the REPL):
//
//	get <key>
//	put <key> <value>
//	remove <key>
//	contains <key>
//	scan [prefix]
//	dump
//	diff <snapshot-a> <snapshot-b>
//	save <path>
//	load <path>
//	exit / quit (REPL only)
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/travpow/set-associative-cache/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logger.Error("assoccache exiting", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("assoccache", flag.ContinueOnError)
	sets := fs.Int("sets", 0, "number of buckets")
	entriesPerSet := fs.Int("entries-per-set", 0, "slots per bucket")
	policy := fs.String("policy", "", "eviction policy: lru, mru, or smallest")
	configPath := fs.String("config", "", "path to a JSONC or YAML config file")
	snapshotPath := fs.String("snapshot", "", "snapshot file to load at startup")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath, config.Overrides{
		Sets:          *sets,
		EntriesPerSet: *entriesPerSet,
		Policy:        *policy,
	})
	if err != nil {
		return err
	}

	c, err := buildCache(cfg)
	if err != nil {
		return fmt.Errorf("building cache from config %+v: %w", cfg, err)
	}

	if *snapshotPath != "" {
		if err := loadSnapshot(c, *snapshotPath); err != nil {
			return fmt.Errorf("loading snapshot %s: %w", *snapshotPath, err)
		}
	}

	rest := fs.Args()
	if len(rest) > 0 {
		return execOnce(c, rest)
	}

	repl := &REPL{cache: c, cfg: cfg}
	return repl.Run()
}
