// Package pipeline drives one full pass over a parsed bibliography: each
// record is formatted, reported, deduplicated by canonical id, and routed to
// the valid or invalid output sink.
//
// Records are processed strictly in input order and duplicate detection is
// order dependent: the first occurrence of a canonical id wins and later
// occurrences are dropped silently, whichever sink they would have reached.
package pipeline
