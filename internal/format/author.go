package format

import (
	"strings"

	"bibtidy/internal/textutil"
)

// authorSeparator joins individual authors in a BibTeX author field.
const authorSeparator = " and "

// Author normalizes a full author field. The field is split on the literal
// " and " separator, each name is normalized individually, and the manual-fix
// flag is the OR over every author in the list.
func Author(field string) Result {
	names := strings.Split(field, authorSeparator)
	formatted := make([]string, 0, len(names))
	var fix bool
	for _, name := range names {
		res := individualAuthor(name)
		formatted = append(formatted, res.Value)
		fix = fix || res.ManualFix
	}
	joined := textutil.CollapseSpaces(strings.Join(formatted, authorSeparator))
	return Result{Value: joined, ManualFix: fix}
}

// individualAuthor normalizes one author name to "First Middle... Last".
// A comma marks "Last, First" form, which is reordered; space form keeps its
// order. A name that cannot be split (an organization, usually) passes
// through unchanged and unflagged. Abbreviated first names are flagged: full
// first names are required.
func individualAuthor(name string) Result {
	name = strings.TrimSpace(name)
	comma := strings.Contains(name, ",")

	sep := " "
	if comma {
		sep = ","
	}
	parts := strings.Split(name, sep)
	if len(parts) <= 1 {
		return Result{Value: name}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var first string
	var ordered []string
	if comma {
		first = parts[1]
		ordered = append(parts[1:], parts[0])
	} else {
		first = parts[0]
		ordered = parts
	}

	return Result{
		Value:     strings.Join(ordered, " "),
		ManualFix: abbreviated(first),
	}
}

// abbreviated reports whether a first name is an initial rather than a full
// name.
func abbreviated(first string) bool {
	runes := []rune(first)
	return len(runes) < 2 || runes[1] == '.'
}
