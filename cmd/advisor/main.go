// Package main provides the entry point for the advisor CLI tool.
package main

import "github.com/abcu/advisor/cmd/advisor/cmd"

// Version information populated by the build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
