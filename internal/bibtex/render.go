package bibtex

import "strings"

// FixMarker is appended to a serialized field line when the field still needs
// a manual fix.
const FixMarker = "*"

// Field is one serialized field line of an output entry.
type Field struct {
	Name    string
	Value   string
	Flagged bool
}

// Render serializes one entry as BibTeX source text:
//
//	@type{key,
//	  field={value},*
//	}
//
// followed by a blank line. Flagged fields carry the fix marker after their
// trailing comma. Type and key are rendered only in the entry header.
func Render(entryType, key string, fields []Field) string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(entryType)
	b.WriteString("{")
	b.WriteString(key)
	b.WriteString(",\n")
	for _, field := range fields {
		b.WriteString("  ")
		b.WriteString(field.Name)
		b.WriteString("={")
		b.WriteString(field.Value)
		b.WriteString("},")
		if field.Flagged {
			b.WriteString(FixMarker)
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
	return b.String()
}
