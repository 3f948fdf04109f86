package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bibtidy/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Output.ValidFile != "validBib.bib" || cfg.Output.InvalidFile != "invalidBib.bib" {
		t.Fatalf("unexpected output files: %q, %q", cfg.Output.ValidFile, cfg.Output.InvalidFile)
	}
	if !filepath.IsAbs(cfg.Output.Directory) {
		t.Fatalf("output directory not expanded: %q", cfg.Output.Directory)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !cfg.Report.Enabled || cfg.Report.Color != "auto" {
		t.Fatalf("unexpected report defaults: %+v", cfg.Report)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesFileValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
[output]
directory = "`+dir+`"
valid_file = "clean.bib"

[logging]
level = "DEBUG"

[[venues.rules]]
keywords = ["workshop on example topics", " wet "]
name = " Workshop on Example Topics "
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Output.ValidFile != "clean.bib" {
		t.Fatalf("unexpected valid file: %q", cfg.Output.ValidFile)
	}
	if cfg.Output.InvalidFile != "invalidBib.bib" {
		t.Fatalf("expected default invalid file, got %q", cfg.Output.InvalidFile)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized level, got %q", cfg.Logging.Level)
	}
	if got := cfg.ValidPath(); got != filepath.Join(dir, "clean.bib") {
		t.Fatalf("unexpected valid path: %q", got)
	}
	rules := cfg.Venues.Rules
	if len(rules) != 1 || rules[0].Name != "Workshop on Example Topics" {
		t.Fatalf("unexpected venue rules: %+v", rules)
	}
	if len(rules[0].Keywords) != 2 || rules[0].Keywords[1] != "wet" {
		t.Fatalf("keywords not normalized: %+v", rules[0].Keywords)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"same output files",
			"[output]\nvalid_file = \"same.bib\"\ninvalid_file = \"same.bib\"\n",
			"must differ",
		},
		{
			"bad log format",
			"[logging]\nformat = \"xml\"\n",
			"logging.format",
		},
		{
			"bad report color",
			"[report]\ncolor = \"sometimes\"\n",
			"report.color",
		},
		{
			"venue rule without name",
			"[[venues.rules]]\nkeywords = [\"x\"]\n",
			"name must be set",
		},
		{
			"venue rule without keywords",
			"[[venues.rules]]\nname = \"X\"\n",
			"at least one keyword",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Output.ValidFile != config.Default().Output.ValidFile {
		t.Fatalf("sample diverges from defaults: %q", cfg.Output.ValidFile)
	}
}
