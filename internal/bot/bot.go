// Package bot wires normalization, the rule table and the session
// history into the per-turn reply logic. One responder invocation per
// turn, default text when nothing matches, no state beyond the
// in-memory session.
package bot

import (
	"strings"
	"time"

	"coursebot/internal/logger"
	"coursebot/internal/normalize"
	"coursebot/internal/rules"
	"coursebot/internal/session"
)

// UnknownIntent labels exchanges that fell through to the default
// response.
const UnknownIntent = "unknown"

// exitKeywords end the conversation when typed on their own,
// case-insensitively. Checked before any rule dispatch.
var exitKeywords = map[string]struct{}{
	"quit":    {},
	"exit":    {},
	"bye":     {},
	"goodbye": {},
}

// Response is the rendered answer for one turn together with the
// intent it resolved to.
type Response struct {
	Text   string
	Intent string
}

// Bot answers one input line at a time against its rule table.
type Bot struct {
	table     *rules.Table
	responder *rules.Responder
	fallback  *rules.Fallback
	session   *session.Session
}

// Option is a functional option for configuring a Bot.
type Option func(*Bot)

// WithClock injects the wall clock used for templated responses and
// exchange timestamps.
func WithClock(clock func() time.Time) Option {
	return func(b *Bot) {
		b.responder = rules.NewResponder(rules.Clock(clock))
		b.session = session.New(session.WithClock(clock))
	}
}

// WithFallback enables the fuzzy keyword fallback pass. A nil fallback
// leaves it disabled.
func WithFallback(f *rules.Fallback) Option {
	return func(b *Bot) {
		b.fallback = f
	}
}

// WithSession replaces the automatically created session.
func WithSession(s *session.Session) Option {
	return func(b *Bot) {
		if s != nil {
			b.session = s
		}
	}
}

// New creates a Bot answering from the given rule table.
func New(table *rules.Table, opts ...Option) *Bot {
	b := &Bot{
		table:     table,
		responder: rules.NewResponder(nil),
		session:   session.New(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Name returns the bot's display name.
func (b *Bot) Name() string {
	return b.table.BotName()
}

// Topics returns the topic list for the welcome banner.
func (b *Bot) Topics() []string {
	return b.table.Topics()
}

// Session returns the conversation history.
func (b *Bot) Session() *session.Session {
	return b.session
}

// IsExit reports whether the input is an exit keyword. Matching is
// case-insensitive and whitespace-tolerant.
func (b *Bot) IsExit(input string) bool {
	_, ok := exitKeywords[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

// Reply answers a single input line. The boolean is false when the
// line produced no response: empty input, or an exit keyword (which
// must never reach the rule table). Every answered turn is recorded
// in the session, including default-response turns.
func (b *Bot) Reply(input string) (Response, bool) {
	if b.IsExit(input) {
		return Response{}, false
	}

	normalized := normalize.Input(input)
	if normalized == "" {
		return Response{}, false
	}

	resp := b.dispatch(normalized)
	b.session.Record(input, resp.Intent, resp.Text)
	return resp, true
}

// dispatch runs the regex pass, then the optional fuzzy pass, then
// falls back to the default response.
func (b *Bot) dispatch(normalized string) Response {
	if rule, ok := b.table.Match(normalized); ok {
		logger.Debug("Rule matched", "intent", rule.Name(), "input", normalized)
		return Response{Text: b.responder.Render(rule), Intent: rule.Name()}
	}

	if b.fallback != nil {
		if rule, score, ok := b.fallback.Match(normalized, b.table); ok {
			logger.Debug("Fuzzy fallback matched", "intent", rule.Name(), "score", score)
			return Response{Text: b.responder.Render(rule), Intent: rule.Name()}
		}
	}

	logger.Debug("No rule matched", "input", normalized)
	return Response{Text: b.table.DefaultResponse(), Intent: UnknownIntent}
}
