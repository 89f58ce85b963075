package main

import (
	"github.com/pyhub-apps/gaejeong-cli/internal/cmd"
)

// Build variables; overwritten via -ldflags at release build time.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, gitCommit, buildDate)
	cmd.Execute()
}
