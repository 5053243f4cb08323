package main

import (
	"log/slog"
	"os"
)

// logger is the CLI's only logging sink. The core cache, the config
// loader, and the snapshot collaborator never log; they return errors.
// This text handler writes to stderr so REPL output on stdout stays
// clean for piping.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
