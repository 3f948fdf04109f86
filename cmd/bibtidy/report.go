package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"bibtidy/internal/format"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// consoleReporter prints every formatted field of every entry: green for
// auto-accepted values, yellow for fields still needing a manual fix.
type consoleReporter struct {
	out      io.Writer
	colorize bool
}

func newConsoleReporter(out io.Writer, colorize bool) *consoleReporter {
	return &consoleReporter{out: out, colorize: colorize}
}

func (r *consoleReporter) Entry(entry format.Entry) {
	r.line("id", entry.ID)
	r.line("type", entry.Kind)

	names := make([]string, 0, len(entry.Fields))
	for name := range entry.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.line(name, entry.Fields[name])
	}
	fmt.Fprintln(r.out, strings.Repeat("-", 20))
}

func (r *consoleReporter) line(name string, res format.Result) {
	text := fmt.Sprintf("%s = {%s}", name, res.Value)
	if r.colorize {
		color := ansiGreen
		if res.ManualFix {
			color = ansiYellow
		}
		text = color + text + ansiReset
	}
	fmt.Fprintln(r.out, text)
}

// resolveColorize maps the report.color setting to a concrete decision; auto
// colors only when the writer is a terminal.
func resolveColorize(setting string, writer io.Writer) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return shouldColorize(writer)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
