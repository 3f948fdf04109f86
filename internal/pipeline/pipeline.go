package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"bibtidy/internal/bibtex"
	"bibtidy/internal/format"
	"bibtidy/internal/logging"
)

// Reporter receives every formatted entry before routing, duplicates
// included. Implementations present per-field outcomes to the user; a nil
// reporter disables reporting.
type Reporter interface {
	Entry(entry format.Entry)
}

// Summary counts the outcomes of one run.
type Summary struct {
	Processed  int
	Valid      int
	Invalid    int
	Duplicates int
}

// Runner formats, deduplicates, and routes records.
type Runner struct {
	formatter *format.Formatter
	reporter  Reporter
	logger    *slog.Logger
}

// NewRunner builds a Runner. reporter may be nil; a nil logger is replaced
// with a no-op logger.
func NewRunner(formatter *format.Formatter, reporter Reporter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{formatter: formatter, reporter: reporter, logger: logger}
}

// Run processes records in input order. Clean entries are serialized to
// valid, flagged entries to invalid, and entries whose canonical id was
// already seen in this run are dropped before either sink. The only errors
// are sink write failures.
func (r *Runner) Run(records []bibtex.Record, valid, invalid io.Writer) (Summary, error) {
	var summary Summary
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		entry := r.formatter.Entry(rec)
		summary.Processed++

		if r.reporter != nil {
			r.reporter.Entry(entry)
		}

		id := entry.ID.Value
		if _, dup := seen[id]; dup {
			summary.Duplicates++
			r.logger.Debug("dropping duplicate entry",
				logging.String("id", id),
				logging.String("source_key", rec.Key),
			)
			continue
		}
		seen[id] = struct{}{}

		sink := valid
		if entry.ManualFix {
			sink = invalid
			summary.Invalid++
		} else {
			summary.Valid++
		}
		if _, err := io.WriteString(sink, render(entry)); err != nil {
			return summary, fmt.Errorf("write entry %s: %w", id, err)
		}
		r.logger.Debug("entry routed",
			logging.String("id", id),
			logging.Bool("manual_fix", entry.ManualFix),
		)
	}

	r.logger.Info("run complete",
		logging.Int("processed", summary.Processed),
		logging.Int("valid", summary.Valid),
		logging.Int("invalid", summary.Invalid),
		logging.Int("duplicates", summary.Duplicates),
	)
	return summary, nil
}

// render serializes a formatted entry with its fields in sorted order so
// output is stable across runs.
func render(entry format.Entry) string {
	names := make([]string, 0, len(entry.Fields))
	for name := range entry.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]bibtex.Field, 0, len(names))
	for _, name := range names {
		res := entry.Fields[name]
		fields = append(fields, bibtex.Field{Name: name, Value: res.Value, Flagged: res.ManualFix})
	}
	return bibtex.Render(entry.Kind.Value, entry.ID.Value, fields)
}
