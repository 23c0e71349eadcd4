// Package console prints the human-facing output of a run: warnings and
// coverage lines on stdout, failures on stderr. Lines from concurrent
// pipelines never interleave mid-line.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mitchellh/colorstring"
)

// Printer writes coloured lines. It is safe for concurrent use.
type Printer struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	color  colorstring.Colorize
}

// New creates a Printer. Colours are dropped when noColor is set.
func New(stdout, stderr io.Writer, noColor bool) *Printer {
	return &Printer{
		stdout: stdout,
		stderr: stderr,
		color: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: noColor,
		},
	}
}

// NoColorEnv reports whether the NO_COLOR convention asks for plain output.
func NoColorEnv() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Info prints an uncoloured line on stdout.
func (p *Printer) Info(format string, args ...any) {
	p.line(p.stdout, "", format, args...)
}

// Success prints a green line on stdout.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.stdout, "green", format, args...)
}

// Warn prints a red line on stdout.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.stdout, "red", format, args...)
}

// Error prints a red line on stderr.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.stderr, "red", format, args...)
}

// line wraps the formatted message in colour codes instead of passing it
// through the colour parser, so brackets in messages print verbatim.
func (p *Printer) line(w io.Writer, color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if color != "" {
		msg = p.color.Color("["+color+"]") + msg + p.color.Color("[reset]")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(w, msg)
}
