// Package main hosts the slurmtail CLI entrypoint and command graph.
//
// The Cobra-based command tree covers submitting a batch script and
// following its log (run), reattaching to a previous submission
// (resume), marker cleanup (clean), submission history, and environment
// preflight checks. Configuration resolution and logger setup happen
// once in commandContext; the follow engine itself lives in
// internal/tailer so commands stay thin.
package main
