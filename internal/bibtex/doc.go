// Package bibtex is the syntax boundary of the tool. It wraps the external
// BibTeX parser into plain Record values on the way in and renders formatted
// entries back to BibTeX source text on the way out.
//
// Nothing in this package makes normalization decisions; it only converts
// between on-disk syntax and the in-memory shapes the pipeline works with.
package bibtex
