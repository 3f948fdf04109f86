// Package format contains the normalization core: independent field
// formatters for author, title, year, entry kind, and venue values, the
// canonical id derivation, and the per-entry orchestration that combines
// them.
//
// Every formatter is a pure function returning a Result — the normalized
// value plus a manual-fix flag. Formatters never fail hard: an input that
// cannot be normalized keeps a fallback value and is flagged for human
// review, so one bad record never aborts a batch.
package format
