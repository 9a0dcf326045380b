// ABOUTME: Finish button rendering for the overlay
// ABOUTME: A single padded, bold label in the theme's button colours

package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
)

// Button renders label as a one-line button.
func Button(label string, fg, bg theme.Color) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(fg.Terminal()).
		Background(bg.Terminal()).
		Padding(0, 2).
		Render(label)
}
