// Package logging assembles structured slog loggers and formatting helpers used
// across nearstars.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and fans records out to an optional log file. Every command run
// is tagged with a run_id so lines from one invocation can be grouped. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
