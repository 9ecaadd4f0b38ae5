// Package logging builds the slog loggers used for slurmtail's own
// diagnostics. Diagnostic output always goes to stderr; stdout belongs
// to the followed log file's content and is never written here.
package logging
