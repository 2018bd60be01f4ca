// Package output renders coursebot's terminal surface: the welcome
// banner, bot responses and the end-of-session statistics report.
// Styling degrades to plain text when the terminal has no color
// support or when plain output is forced.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"coursebot/internal/session"
)

// Printer is the output handler for the chat surface. It is safe for
// concurrent use, though the dispatch loop itself is single-threaded.
type Printer struct {
	writer     io.Writer
	forcePlain bool
	testMode   bool

	mu sync.Mutex

	titleStyle lipgloss.Style
	nameStyle  lipgloss.Style
	dimStyle   lipgloss.Style
}

// NewPrinter creates a new Printer with the given options. By default
// it writes to os.Stdout and auto-detects color support from the
// environment.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
	}
	for _, opt := range options {
		opt(p)
	}

	if !p.forcePlain && termenv.EnvColorProfile() == termenv.Ascii {
		p.forcePlain = true
	}

	p.titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	p.nameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	p.dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return p
}

// Println outputs text with a trailing newline.
func (p *Printer) Println(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.writer, text)
}

// Printf outputs formatted text.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.writer, format, args...)
}

// Banner prints the welcome header with the bot name and the topics it
// can answer questions about.
func (p *Printer) Banner(botName string, topics []string) {
	p.Println(p.styled(p.titleStyle, botName))
	p.Println("Welcome! I can answer questions about:")
	for _, topic := range topics {
		p.Printf("  - %s\n", topic)
	}
	p.Println(p.styled(p.dimStyle, "Type 'quit' or 'exit' to end the conversation."))
	p.Println("")
}

// BotResponse prints one bot reply, prefixed with the bot name.
func (p *Printer) BotResponse(botName, text string) {
	p.Printf("%s: %s\n\n", p.styled(p.nameStyle, botName), text)
}

// Farewell prints the goodbye line when the session ends.
func (p *Printer) Farewell(botName, text string) {
	p.Printf("%s: %s\n", p.styled(p.nameStyle, botName), text)
}

// Statistics prints the end-of-session usage report: total exchanges
// and the per-intent distribution.
func (p *Printer) Statistics(stats session.Statistics) {
	if stats.TotalExchanges == 0 {
		return
	}
	p.Println("")
	p.Println(p.styled(p.titleStyle, "Conversation statistics"))
	p.Printf("Total messages: %d\n", stats.TotalExchanges)
	p.Println("Intent distribution:")
	for _, ic := range stats.Intents {
		p.Printf("  - %s: %d\n", ic.Intent, ic.Count)
	}
}

// styled renders text through a lipgloss style unless plain output is
// in effect.
func (p *Printer) styled(style lipgloss.Style, text string) string {
	if p.forcePlain {
		return text
	}
	return style.Render(text)
}
