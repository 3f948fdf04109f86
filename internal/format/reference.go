package format

import (
	"strings"

	"bibtidy/internal/textutil"
)

// Reference derives the canonical id for an entry from its normalized title,
// author, and year, e.g. dingledine2004tor. It returns "" when derivation is
// impossible: a missing input, or a title made entirely of small words.
//
// The title key is the first word of the lowercased title that is not a small
// word. The author key comes from the first author: used whole when it has no
// internal space (organization names), otherwise its last token. Both keys
// are reduced to letters only, and the whole id is lowercase.
func Reference(title, author, year string) string {
	if title == "" || author == "" || year == "" {
		return ""
	}

	var titleKey string
	for _, word := range strings.Fields(strings.ToLower(title)) {
		if _, small := smallWords[word]; small {
			continue
		}
		titleKey = word
		break
	}
	if titleKey == "" {
		return ""
	}

	firstAuthor := strings.Split(author, authorSeparator)[0]
	authorKey := firstAuthor
	if tokens := strings.Fields(firstAuthor); len(tokens) > 1 {
		authorKey = strings.ToLower(tokens[len(tokens)-1])
	}

	id := textutil.LettersOnly(authorKey) + year + textutil.LettersOnly(titleKey)
	return strings.ToLower(id)
}
