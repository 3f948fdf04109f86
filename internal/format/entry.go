package format

import (
	"bibtidy/internal/bibtex"
	"bibtidy/internal/venue"
)

// MissingValue is the sentinel inserted for required fields absent from an
// entry.
const MissingValue = "<Missing>"

// Entry is the fully formatted form of one record. Kind and ID are always
// populated; Fields holds a Result for every recognized source field plus a
// sentinel for every required field the source lacked. ManualFix aggregates
// the individual flags, the required-field check, and the id derivation.
type Entry struct {
	Kind      Result
	ID        Result
	Fields    map[string]Result
	ManualFix bool
}

// Formatter normalizes whole records. It owns the venue matcher; the field
// formatters themselves are stateless.
type Formatter struct {
	venues *venue.Matcher
}

// New builds a Formatter around the given venue matcher.
func New(venues *venue.Matcher) *Formatter {
	return &Formatter{venues: venues}
}

// fieldFormatters is the dispatch table from recognized field names to their
// formatters. Fields outside this table pass through unformatted and are
// excluded from the result.
func (f *Formatter) fieldFormatters() map[string]func(string) Result {
	return map[string]func(string) Result{
		"author":    Author,
		"title":     Title,
		"year":      Year,
		"booktitle": f.venue,
		"journal":   f.venue,
	}
}

func (f *Formatter) venue(raw string) Result {
	name, fix := f.venues.Match(raw)
	return Result{Value: name, ManualFix: fix}
}

// Entry formats one record: every recognized field is normalized, the
// canonical id is derived (or falls back to the source key), and required
// fields missing for the entry's kind get the sentinel value. The aggregate
// flag is an OR across all of it.
func (f *Formatter) Entry(rec bibtex.Record) Entry {
	out := Entry{
		Kind:   Kind(rec.Type),
		Fields: make(map[string]Result, len(rec.Fields)),
	}
	out.ManualFix = out.Kind.ManualFix

	formatters := f.fieldFormatters()
	for name, raw := range rec.Fields {
		fn, ok := formatters[name]
		if !ok {
			continue
		}
		res := fn(raw)
		out.Fields[name] = res
		out.ManualFix = out.ManualFix || res.ManualFix
	}

	out.ID = f.reference(rec, out.Fields)
	out.ManualFix = out.ManualFix || out.ID.ManualFix

	for _, field := range RequiredFields(out.Kind.Value) {
		if _, ok := out.Fields[field]; !ok {
			out.Fields[field] = Result{Value: MissingValue, ManualFix: true}
			out.ManualFix = true
		}
	}

	return out
}

// reference attempts canonical id derivation from the formatted title,
// author, and year. Derivation is skipped when any of the three is absent or
// individually flagged; the record then keeps its original source key,
// flagged for manual fix.
func (f *Formatter) reference(rec bibtex.Record, fields map[string]Result) Result {
	title, hasTitle := fields["title"]
	author, hasAuthor := fields["author"]
	year, hasYear := fields["year"]

	if hasTitle && hasAuthor && hasYear &&
		!title.ManualFix && !author.ManualFix && !year.ManualFix {
		if id := Reference(title.Value, author.Value, year.Value); id != "" {
			return Result{Value: id}
		}
	}
	return Result{Value: rec.Key, ManualFix: true}
}
