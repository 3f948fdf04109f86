package textutil

import "strings"

// decorationReplacer removes the brace and quote characters BibTeX uses to
// delimit field values.
var decorationReplacer = strings.NewReplacer(
	"{", "",
	"}", "",
	"\"", "",
)

// StripDelimiters cleans a raw field assignment fragment. Anything up to and
// including the last "=" is dropped, brace/quote decoration is removed, and
// trailing comma separators plus surrounding whitespace are trimmed.
func StripDelimiters(text string) string {
	if idx := strings.LastIndex(text, "="); idx >= 0 {
		text = text[idx+1:]
	}
	text = decorationReplacer.Replace(text)
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, ",")
	return strings.TrimSpace(text)
}

// LettersOnly removes every character that is not an ASCII letter. Identifier
// components built from it contain no digits, punctuation, or spaces.
func LettersOnly(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseSpaces folds every whitespace run into a single space and trims the
// ends.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
