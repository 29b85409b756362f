// Package config loads, normalizes, and validates nearstars configuration.
//
// It supplies repository defaults (including the catalog's 25-column layout
// and the two chart profiles), expands user paths, reads TOML files, and
// honours the NEARSTARS_CATALOG environment fallback. Chart settings left
// unset in the file are filled from the selected profile, so downstream code
// always receives concrete values.
//
// Always obtain settings through this package so the loader, renderer, and
// exporter agree on paths and column names.
package config
