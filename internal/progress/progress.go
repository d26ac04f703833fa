// Package progress provides CLI progress indicators. Output goes to stderr
// to keep stdout clean for piping, and TTY detection ensures nothing is
// written at all in scripted usage.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Progress tracks and displays the completion of a fixed number of steps.
// Step is safe for concurrent use.
type Progress struct {
	mu      sync.Mutex
	w       io.Writer
	label   string
	total   int
	current int
	width   int // longest line written, for clearing
	isTTY   bool
}

// New creates a progress reporter that writes to stderr.
func New(label string, total int) *Progress {
	return newProgress(os.Stderr, label, total, term.IsTerminal(int(os.Stderr.Fd())))
}

func newProgress(w io.Writer, label string, total int, tty bool) *Progress {
	return &Progress{w: w, label: label, total: total, isTTY: tty}
}

// Step records one completed step, named for display.
// On TTY, it uses carriage return to update in place.
func (p *Progress) Step(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current++
	if !p.isTTY {
		return
	}
	line := fmt.Sprintf("%s... %d/%d %s", p.label, p.current, p.total, name)
	p.width = max(p.width, len(line))
	// Overwrite line on TTY, padding out any longer previous line
	fmt.Fprintf(p.w, "\r%-*s", p.width, line)
}

// Current returns the number of completed steps.
func (p *Progress) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Done clears the progress line (on TTY) to make way for final output.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isTTY && p.width > 0 {
		fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
	}
}
