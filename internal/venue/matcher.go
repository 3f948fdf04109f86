package venue

import (
	"strings"

	"bibtidy/internal/textutil"
)

// Matcher resolves raw venue strings against an ordered rule table.
type Matcher struct {
	rules []Rule
}

// NewMatcher builds a matcher from the built-in rules followed by any extra
// rules. Extra rules are appended, so under last-match-wins they take priority
// over the built-in table.
func NewMatcher(extra ...Rule) *Matcher {
	rules := DefaultRules()
	rules = append(rules, extra...)
	return &Matcher{rules: rules}
}

// Rules returns the effective rule table in priority order.
func (m *Matcher) Rules() []Rule {
	rules := make([]Rule, len(m.rules))
	copy(rules, m.rules)
	return rules
}

// Match resolves a raw venue string to its canonical name. The input is
// sanitized, then every rule is scanned in order; a rule applies when any of
// its keywords is a case-insensitive substring of the sanitized text, and the
// last applicable rule determines the result. When no rule applies the
// sanitized input is returned with the manual-fix flag set.
func (m *Matcher) Match(raw string) (string, bool) {
	sanitized := textutil.StripDelimiters(raw)
	lowered := strings.ToLower(sanitized)

	// No early exit: a later rule must be able to override an earlier match.
	var best string
	for _, rule := range m.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, strings.ToLower(keyword)) {
				best = rule.Name
				break
			}
		}
	}

	if best == "" {
		return sanitized, true
	}
	return best, false
}
