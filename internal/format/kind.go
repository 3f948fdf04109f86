package format

// DefaultKind is substituted for unsupported entry types.
const DefaultKind = "inproceedings"

// entryKinds is the closed set of supported entry types.
var entryKinds = map[string]struct{}{
	"misc":          {},
	"inproceedings": {},
	"journal":       {},
	"techreport":    {},
}

// requiredFields lists the fields every entry of a given kind must carry.
var requiredFields = map[string][]string{
	"misc":          {"author", "howpublished", "title", "year"},
	"inproceedings": {"author", "booktitle", "title", "year"},
	"journal":       {"author", "journal", "title", "year"},
	"techreport":    {"author", "howpublished", "title", "year"},
}

// Kind validates an entry type against the supported set. Unsupported types
// default to inproceedings; defaulting counts as resolved, not as an error.
func Kind(field string) Result {
	if _, ok := entryKinds[field]; !ok {
		return Result{Value: DefaultKind}
	}
	return Result{Value: field}
}

// RequiredFields returns the required-field list for an already normalized
// entry kind.
func RequiredFields(kind string) []string {
	return requiredFields[kind]
}
