package bibtex

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nickng/bibtex"
)

// Record is one parsed bibliography entry. Fields maps lowercase field names
// to their raw string values; Type and Key are carried separately and never
// appear in Fields.
type Record struct {
	Type   string
	Key    string
	Fields map[string]string
}

// Read parses a BibTeX database from r into records, preserving source order.
func Read(r io.Reader) ([]Record, error) {
	db, err := bibtex.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse bibtex: %w", err)
	}

	records := make([]Record, 0, len(db.Entries))
	for _, entry := range db.Entries {
		fields := make(map[string]string, len(entry.Fields))
		for name, value := range entry.Fields {
			fields[strings.ToLower(strings.TrimSpace(name))] = value.String()
		}
		records = append(records, Record{
			Type:   strings.ToLower(strings.TrimSpace(entry.Type)),
			Key:    strings.TrimSpace(entry.CiteName),
			Fields: fields,
		})
	}
	return records, nil
}

// ReadFile parses the BibTeX database at path.
func ReadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bibliography: %w", err)
	}
	defer file.Close()

	records, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}
