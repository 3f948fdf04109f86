package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Output contains destinations for the two output streams.
type Output struct {
	Directory   string `toml:"directory"`
	ValidFile   string `toml:"valid_file"`
	InvalidFile string `toml:"invalid_file"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Report contains configuration for the per-field console report.
type Report struct {
	Enabled bool   `toml:"enabled"`
	Color   string `toml:"color"`
}

// VenueRule is one user-supplied venue rule. User rules are appended after
// the built-in table, so they override it under last-match-wins.
type VenueRule struct {
	Keywords []string `toml:"keywords"`
	Name     string   `toml:"name"`
}

// Venues contains user additions to the venue rule table.
type Venues struct {
	Rules []VenueRule `toml:"rules"`
}

// Config encapsulates all configuration values for bibtidy.
type Config struct {
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
	Report  Report  `toml:"report"`
	Venues  Venues  `toml:"venues"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/bibtidy/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has its output directory expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("bibtidy.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// ValidPath returns the full path of the valid output file.
func (c *Config) ValidPath() string {
	return filepath.Join(c.Output.Directory, c.Output.ValidFile)
}

// InvalidPath returns the full path of the invalid output file.
func (c *Config) InvalidPath() string {
	return filepath.Join(c.Output.Directory, c.Output.InvalidFile)
}

// LockPath returns the path of the run lock guarding the output files.
func (c *Config) LockPath() string {
	return filepath.Join(c.Output.Directory, ".bibtidy.lock")
}

// EnsureDirectories creates the output directory if needed.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Output.Directory, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Output.Directory, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(os.ExpandEnv(pathValue))
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
