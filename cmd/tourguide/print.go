// ABOUTME: Non-interactive output: render one tour step as a single frame, or list the demo's targets
// ABOUTME: Uses the real terminal size when stdout is a terminal, 80x24 otherwise

package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/tourguide-go/pkg/tourguide"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/teahost"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// terminalSize returns the size of stdout, or the fallback when it is not
// a terminal.
func terminalSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth, fallbackHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// printStep lays out step i without animation and writes the frame.
func printStep(h *teahost.Host, r *tourRunner, i int, w io.Writer, cols, rows int) error {
	r.static = true
	h.Update(tea.WindowSizeMsg{Width: cols, Height: rows})
	if err := r.show(i); err != nil {
		return err
	}
	h.Layout()
	if r.guide.State() != tourguide.Active {
		return fmt.Errorf("target %q was not found", r.tour.Steps[i].Target)
	}
	_, err := fmt.Fprintln(w, h.View())
	return err
}

// listTargets writes every zone the demo app renders, one per line.
func listTargets(h *teahost.Host, w io.Writer, cols, rows int) error {
	h.Update(tea.WindowSizeMsg{Width: cols, Height: rows})
	for _, id := range h.Zones() {
		r, _ := h.TargetBounds(id)
		if _, err := fmt.Fprintf(w, "%-16s %s\n", id, r); err != nil {
			return err
		}
	}
	return nil
}
