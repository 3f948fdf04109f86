package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateVenues()
}

func (c *Config) validateOutput() error {
	if c.Output.ValidFile == c.Output.InvalidFile {
		return errors.New("output.valid_file and output.invalid_file must differ")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateReport() error {
	switch c.Report.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("report.color must be auto, always, or never, got %q", c.Report.Color)
	}
	return nil
}

func (c *Config) validateVenues() error {
	for i, rule := range c.Venues.Rules {
		if rule.Name == "" {
			return fmt.Errorf("venues.rules[%d]: name must be set", i)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("venues.rules[%d] (%s): at least one keyword is required", i, rule.Name)
		}
	}
	return nil
}
