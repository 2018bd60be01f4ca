package output

import "io"

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithWriter configures the printer to write output to the specified
// writer. Default is os.Stdout if not specified.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// PlainText forces plain text output regardless of terminal
// capabilities. Used for --no-color and machine-readable output.
func PlainText() Option {
	return func(p *Printer) {
		p.forcePlain = true
	}
}

// TestMode configures the printer for deterministic output in tests:
// plain text, no terminal detection.
func TestMode() Option {
	return func(p *Printer) {
		p.testMode = true
		p.forcePlain = true
	}
}
