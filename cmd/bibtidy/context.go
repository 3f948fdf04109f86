package main

import (
	"strings"
	"sync"

	"bibtidy/internal/config"
	"bibtidy/internal/venue"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// venueMatcher builds the effective matcher: built-in rules plus the config's
// extra rules, appended so they take priority.
func (c *commandContext) venueMatcher(cfg *config.Config) *venue.Matcher {
	extra := make([]venue.Rule, 0, len(cfg.Venues.Rules))
	for _, rule := range cfg.Venues.Rules {
		extra = append(extra, venue.Rule{Keywords: rule.Keywords, Name: rule.Name})
	}
	return venue.NewMatcher(extra...)
}
