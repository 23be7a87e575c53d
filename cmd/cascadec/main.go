// Package main is the entry point for the cascadec CLI.
package main

import (
	"os"

	"github.com/evanacox/cascade/internal/cli"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	os.Exit(cli.Execute(info))
}
