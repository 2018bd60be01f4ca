package rules

import (
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	defaultPhoneticThreshold = 0.80
	defaultFuzzyThreshold    = 0.88
)

// FallbackOption is a functional option for configuring a Fallback.
type FallbackOption func(*Fallback)

// WithPhoneticThreshold sets the minimum Jaro-Winkler score required
// for a keyword that phonetically overlaps the input. Default: 0.80.
func WithPhoneticThreshold(threshold float64) FallbackOption {
	return func(f *Fallback) {
		f.phoneticThreshold = threshold
	}
}

// WithFuzzyThreshold sets the minimum Jaro-Winkler score required for
// a keyword with no phonetic overlap. Default: 0.88.
func WithFuzzyThreshold(threshold float64) FallbackOption {
	return func(f *Fallback) {
		f.fuzzyThreshold = threshold
	}
}

// Fallback resolves near-miss spellings ("exxam", "githib") after the
// regex pass found nothing. Each input token is compared against each
// rule's keyword list using Double Metaphone phonetic codes gated by
// Jaro-Winkler similarity. Rules are tried in table order and the first
// rule with a keyword clearing its threshold wins, so precedence stays
// identical to the regex pass. Read-only after construction.
type Fallback struct {
	phoneticThreshold float64
	fuzzyThreshold    float64
}

// NewFallback returns a Fallback configured with the supplied options.
func NewFallback(opts ...FallbackOption) *Fallback {
	f := &Fallback{
		phoneticThreshold: defaultPhoneticThreshold,
		fuzzyThreshold:    defaultFuzzyThreshold,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Match scans the table in order and returns the first rule owning a
// keyword that is close enough to one of the input tokens. The score
// of the accepted keyword is returned for logging.
func (f *Fallback) Match(normalized string, table *Table) (*Rule, float64, bool) {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return nil, 0, false
	}

	for _, rule := range table.Rules() {
		if score, ok := f.ruleScore(tokens, rule.Keywords()); ok {
			return rule, score, true
		}
	}
	return nil, 0, false
}

// ruleScore returns the best accepted token/keyword score for one rule.
func (f *Fallback) ruleScore(tokens, keywords []string) (float64, bool) {
	var best float64
	matched := false

	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		kp, ks := matchr.DoubleMetaphone(keyword)

		for _, token := range tokens {
			score := matchr.JaroWinkler(token, keyword, false)
			threshold := f.fuzzyThreshold
			if phoneticOverlap(token, kp, ks) {
				threshold = f.phoneticThreshold
			}
			if score >= threshold && score > best {
				best = score
				matched = true
			}
		}
	}
	return best, matched
}

// phoneticOverlap reports whether the token shares a Double Metaphone
// code with the keyword. Empty codes (short or vowel-only words) never
// overlap.
func phoneticOverlap(token, keywordPrimary, keywordSecondary string) bool {
	tp, ts := matchr.DoubleMetaphone(token)
	for _, tc := range []string{tp, ts} {
		if tc == "" {
			continue
		}
		if tc == keywordPrimary || (keywordSecondary != "" && tc == keywordSecondary) {
			return true
		}
	}
	return false
}
