// Package main hosts the bibtidy CLI entrypoint and command graph.
//
// The Cobra-based command tree wires the parse-format-dedupe pipeline to the
// terminal: the format command runs one pass over a bibliography file, venues
// prints the effective rule table, and config scaffolds or inspects the TOML
// configuration. It centralizes configuration resolution and structured
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
