package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	cache "github.com/travpow/set-associative-cache"
	"github.com/travpow/set-associative-cache/internal/config"
)

var replCommands = []string{
	"get", "put", "remove", "contains", "scan", "dump", "diff", "save", "load", "size", "clear", "help", "exit", "quit",
}

// REPL is the interactive command loop built on top of the same dispatch
// table the one-shot CLI path uses.
type REPL struct {
	cache *cache.Cache[string, string]
	cfg   config.Config
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".assoccache_history")
}

// Run starts the REPL loop. It returns nil on a clean exit (exit/quit/EOF)
// and a non-nil error only if reading a line fails for a reason other than
// EOF or an aborted prompt.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("assoccache (sets=%d entriesPerSet=%d policy=%s)\n", r.cfg.Sets, r.cfg.EntriesPerSet, r.cfg.Policy)
	fmt.Println("Type 'help' for available commands.")

	for {
		line, err := r.liner.Prompt("assoccache> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println()
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		name, args := strings.ToLower(parts[0]), parts[1:]

		if name == "exit" || name == "quit" {
			break
		}
		if name == "help" || name == "?" {
			r.printHelp()
			continue
		}

		out, err := dispatch(r.cache, name, args)
		if err != nil {
			logger.Error("command failed", "command", name, "args", args, "err", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}

	r.saveHistory()
	return nil
}

func (r *REPL) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		r.liner.WriteHistory(f)
		f.Close()
	}
}

func (r *REPL) completer(line string) []string {
	var matches []string
	for _, cmd := range replCommands {
		if strings.HasPrefix(cmd, line) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

func (r *REPL) printHelp() {
	fmt.Println(`commands:
  get <key>
  put <key> <value>
  remove <key>
  contains <key>
  scan [prefix]
  dump
  diff <snapshot-a> <snapshot-b>
  save <path>
  load <path>
  size
  clear
  exit / quit`)
}
