// Package engine drives rule checks over a directory tree. It selects target
// files, runs the enabled rules on each of them in parallel, optionally
// writes corrections back, and returns structured results. This package is
// internal; external consumers should use the stable facade in pkg/core.
package engine
