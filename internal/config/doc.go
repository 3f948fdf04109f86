// Package config loads, normalizes, and validates bibtidy's TOML
// configuration.
//
// Configuration sections:
//   - Output: destination directory and the valid/invalid file names
//   - Logging: log format and level
//   - Report: per-field console report settings
//   - Venues: extra venue rules appended after the built-in table
//
// Load resolves the config path (explicit flag, ~/.config/bibtidy/config.toml,
// then ./bibtidy.toml), decodes over defaults, expands paths, and validates.
package config
