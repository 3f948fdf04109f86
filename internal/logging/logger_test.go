package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bibtidy/internal/logging"
)

func TestNewConsoleWritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("run complete", logging.Int("processed", 3), logging.String("id", "thomas2014study"))

	out := buf.String()
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "run complete") {
		t.Errorf("missing header in output: %q", out)
	}
	if !strings.Contains(out, "- processed: 3") {
		t.Errorf("missing attr in output: %q", out)
	}
	if !strings.Contains(out, "- id: thomas2014study") {
		t.Errorf("missing attr in output: %q", out)
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNewJSONEmitsStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("entry routed", logging.Bool("manual_fix", true))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "entry routed" {
		t.Errorf("unexpected msg: %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Errorf("unexpected level: %v", record["level"])
	}
	if record["manual_fix"] != true {
		t.Errorf("unexpected manual_fix: %v", record["manual_fix"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("must not panic", logging.Error(nil))
}
