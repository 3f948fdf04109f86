package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeReport()
	c.normalizeVenues()
	return nil
}

func (c *Config) normalizeOutput() error {
	if strings.TrimSpace(c.Output.Directory) == "" {
		c.Output.Directory = defaultOutputDirectory
	}
	var err error
	if c.Output.Directory, err = expandPath(c.Output.Directory); err != nil {
		return fmt.Errorf("output.directory: %w", err)
	}
	if strings.TrimSpace(c.Output.ValidFile) == "" {
		c.Output.ValidFile = defaultValidFile
	}
	if strings.TrimSpace(c.Output.InvalidFile) == "" {
		c.Output.InvalidFile = defaultInvalidFile
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeReport() {
	c.Report.Color = strings.ToLower(strings.TrimSpace(c.Report.Color))
	if c.Report.Color == "" {
		c.Report.Color = defaultReportColor
	}
}

func (c *Config) normalizeVenues() {
	for i := range c.Venues.Rules {
		rule := &c.Venues.Rules[i]
		rule.Name = strings.TrimSpace(rule.Name)
		keywords := rule.Keywords[:0]
		for _, keyword := range rule.Keywords {
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		rule.Keywords = keywords
	}
}
