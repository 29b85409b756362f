// Package main hosts the nearstars CLI entrypoint and command graph.
//
// The Cobra-based command tree loads the fixed-width star catalog, renders
// the temperature–luminosity chart, prints tabular views and statistics,
// exports snapshots to SQLite, and scaffolds configuration. It centralizes
// configuration resolution and structured logging setup so subcommands only
// deal with presentation.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
