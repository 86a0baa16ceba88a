// Package config reads and writes the YAML release descriptor consumed by
// the stamping tool. Validation treats malformed files as operator errors,
// returned rather than panicked, so the CLI can report them cleanly.
package config
