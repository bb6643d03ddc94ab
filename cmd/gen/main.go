// Package main is the entry point for the gen CLI.
package main

import (
	"os"

	"github.com/jmgilman/go/gen/internal/cli"
)

// These variables are set at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(cli.BuildInfo{Version: version, Commit: commit, Date: date}))
}
