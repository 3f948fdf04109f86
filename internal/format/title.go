package format

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// smallWords are never capitalized mid-title and never contribute the key
// word of a canonical id.
var smallWords = map[string]struct{}{
	"a":    {},
	"an":   {},
	"as":   {},
	"on":   {},
	"to":   {},
	"by":   {},
	"with": {},
	"from": {},
	"in":   {},
	"of":   {},
	"the":  {},
	"and":  {},
	"for":  {},
	"is":   {},
}

// titleCaser capitalizes the leading letter of a word without touching the
// rest, so acronyms survive.
var titleCaser = cases.Title(language.English, cases.NoLower)

// Title normalizes a title field: whitespace runs collapse to single spaces
// and words are title-cased, except small words after the first, which stay
// lowercase. Titles are always auto-corrected — the result never requires a
// manual fix.
func Title(field string) Result {
	words := strings.Fields(field)
	for i, word := range words {
		lowered := strings.ToLower(word)
		if _, small := smallWords[lowered]; small && i > 0 {
			words[i] = lowered
			continue
		}
		// Words that already carry capitals (USENIX, IPv6) are kept as written.
		if word == lowered {
			words[i] = titleCaser.String(word)
		}
	}
	return Result{Value: strings.Join(words, " ")}
}
