// Package logging assembles the structured slog loggers used across bibtidy.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes Attr helper aliases so callers never import log/slog directly. A
// no-op logger is provided for tests and wiring code that cannot fail.
package logging
