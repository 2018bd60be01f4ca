// Package rules implements the ordered rule table at the heart of coursebot.
// A rule pairs an intent name with the compiled patterns that recognize it
// and the response templates it produces. Rules are immutable once the
// table is built; their relative order decides precedence.
package rules

import "regexp"

// Rule is a single (patterns, responses) entry in the table. It is
// constructed by the loader and never mutated afterwards.
type Rule struct {
	name      string
	patterns  []*regexp.Regexp
	keywords  []string
	responses []string
}

// Name returns the intent label of the rule, e.g. "assessment".
func (r *Rule) Name() string {
	return r.name
}

// Keywords returns the plain keyword list used by the fuzzy fallback pass.
func (r *Rule) Keywords() []string {
	return r.keywords
}

// Responses returns the ordered response templates for the rule.
func (r *Rule) Responses() []string {
	return r.responses
}

// matches reports whether any of the rule's patterns match the
// normalized input.
func (r *Rule) matches(normalized string) bool {
	for _, p := range r.patterns {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}

// Table is the ordered collection of rules plus the default response
// used when no rule matches. It exposes no mutation operations.
type Table struct {
	botName         string
	topics          []string
	rules           []*Rule
	defaultResponse string
}

// BotName returns the display name carried by the rule set.
func (t *Table) BotName() string {
	return t.botName
}

// Topics returns the human-readable topic list shown in the welcome
// banner.
func (t *Table) Topics() []string {
	return t.topics
}

// Rules returns the rules in precedence order.
func (t *Table) Rules() []*Rule {
	return t.rules
}

// DefaultResponse returns the fixed text emitted when nothing matches.
func (t *Table) DefaultResponse() string {
	return t.defaultResponse
}

// Match scans the rules in order and returns the first one whose
// patterns match the normalized input. The second return value is
// false when no rule matches.
func (t *Table) Match(normalized string) (*Rule, bool) {
	for _, r := range t.rules {
		if r.matches(normalized) {
			return r, true
		}
	}
	return nil, false
}
