package rules

import (
	"strings"
	"time"
)

// Template placeholders recognized in response text.
const (
	timePlaceholder      = "{{time}}"
	timeOfDayPlaceholder = "{{timeofday}}"
)

// Clock supplies the current wall-clock time. Tests inject a fixed
// clock for deterministic template output.
type Clock func() time.Time

// Responder renders a rule's response text, substituting the current
// time into templates that ask for it.
type Responder struct {
	clock Clock
}

// NewResponder creates a Responder using the given clock. A nil clock
// falls back to time.Now.
func NewResponder(clock Clock) *Responder {
	if clock == nil {
		clock = time.Now
	}
	return &Responder{clock: clock}
}

// Render produces the response for a matched rule. The first template
// is used; selection beyond rule order is deliberately out of scope.
func (r *Responder) Render(rule *Rule) string {
	if rule == nil || len(rule.responses) == 0 {
		return ""
	}
	return r.expand(rule.responses[0])
}

// expand substitutes time placeholders in a response template.
func (r *Responder) expand(template string) string {
	if !strings.Contains(template, "{{") {
		return template
	}
	now := r.clock()
	out := strings.ReplaceAll(template, timePlaceholder, now.Format("3:04 PM"))
	out = strings.ReplaceAll(out, timeOfDayPlaceholder, TimeOfDay(now))
	return out
}

// TimeOfDay buckets a wall-clock time into "morning", "afternoon" or
// "evening" for greeting templates.
func TimeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	default:
		return "evening"
	}
}
