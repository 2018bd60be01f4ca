// Package shell provides the interactive dispatch loop for coursebot.
// It routes every line the user types through the bot and prints the
// resulting response, terminating on an exit keyword or end-of-input.
//
// Lines are taken from the reader verbatim. Chat input is free text,
// not a command language, so no shell-style lexing happens between the
// prompt and the bot: apostrophes, quotes and stray punctuation are
// all answered like any other text.
package shell

import (
	"strings"

	"github.com/abiosoft/readline"

	"coursebot/internal/bot"
	"coursebot/internal/logger"
	"coursebot/internal/output"
)

// farewellText is printed once when the conversation ends, whether by
// exit keyword or end-of-input.
const farewellText = "Goodbye! Good luck with your studies!"

// Handler drives one interactive chat session.
type Handler struct {
	bot     *bot.Bot
	printer *output.Printer
	closed  bool
}

// NewHandler creates a Handler for the given bot and printer.
func NewHandler(b *bot.Bot, p *output.Printer) *Handler {
	return &Handler{bot: b, printer: p}
}

// Welcome prints the banner shown when the shell starts.
func (h *Handler) Welcome() {
	h.printer.Banner(h.bot.Name(), h.bot.Topics())
}

// LineReader supplies input lines for the dispatch loop. It matches
// the Readline method of readline.Instance so tests can script a
// session.
type LineReader interface {
	Readline() (string, error)
}

// Run drives the whole session: welcome banner, then read a line,
// handle it, repeat until an exit keyword or end-of-input. Ctrl-C on a
// non-empty line discards the line; on an empty line it ends the
// session like end-of-input does.
func (h *Handler) Run(lines LineReader) {
	h.Welcome()

	for {
		line, err := lines.Readline()
		if err != nil {
			if err == readline.ErrInterrupt && strings.TrimSpace(line) != "" {
				continue
			}
			break
		}
		if h.HandleLine(line) {
			break
		}
	}

	h.Close()
}

// HandleLine processes a single input line and reports whether the
// session should stop. Exit keywords never reach the rule table; they
// trigger the farewell and the statistics report instead.
func (h *Handler) HandleLine(line string) bool {
	if h.bot.IsExit(line) {
		h.Close()
		return true
	}

	resp, ok := h.bot.Reply(line)
	if !ok {
		// Blank or punctuation-only line, nothing to answer.
		return false
	}

	h.printer.BotResponse(h.bot.Name(), resp.Text)
	return false
}

// Close prints the farewell and session statistics exactly once. It
// fires on exit keywords and again when Run's loop ends, so
// end-of-input gets the same treatment.
func (h *Handler) Close() {
	if h.closed {
		return
	}
	h.closed = true

	stats := h.bot.Session().Statistics()
	logger.Debug("Session finished",
		"session", h.bot.Session().ID(),
		"started", h.bot.Session().Started(),
		"exchanges", stats.TotalExchanges)

	h.printer.Farewell(h.bot.Name(), farewellText)
	h.printer.Statistics(stats)
}
