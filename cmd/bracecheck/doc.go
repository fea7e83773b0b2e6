// Package bracecheck provides the command-line interface for the bracecheck
// tool. It configures subcommands (check, fix, rules, baseline, etc.), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/bracecheck/bracecheck/cmd/bracecheck"
//	func main() { bracecheck.Execute() }
package bracecheck
