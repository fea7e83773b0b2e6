package main

import "github.com/bracecheck/bracecheck/cmd/bracecheck"

func main() { bracecheck.Execute() }
