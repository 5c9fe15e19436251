// Package main provides the entry point for the trustreport CLI tool.
package main

import "github.com/complykit/trustreport/cmd/trustreport/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
