// cmd/promptbench/main.go
package main

import (
	promptbench "github.com/promptlab/promptbench/internal/commands"
)

// Build-time variables injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Indirections for testing the wiring without running the CLI.
var (
	setVersionInfo = promptbench.SetVersionInfo
	executeCmd     = promptbench.Execute
)

// main starts the promptbench CLI by delegating to the cobra root command.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
