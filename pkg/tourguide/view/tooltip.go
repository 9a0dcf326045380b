// ABOUTME: Built-in tooltip view: title and description in a lipgloss box with optional border and shadow
// ABOUTME: Render lays the box out within a maximum width; Measure reports its natural size

package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
	"github.com/mauromedda/tourguide-go/pkg/tui/width"
)

// Renderer produces the lines of a block no wider than maxWidth cells.
// Custom tooltip views implement it.
type Renderer interface {
	Render(maxWidth int) []string
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(maxWidth int) []string

// Render calls f.
func (f RenderFunc) Render(maxWidth int) []string { return f(maxWidth) }

// Measure returns the natural size of r when allowed up to maxWidth cells.
func Measure(r Renderer, maxWidth int) geom.Size {
	lines := r.Render(maxWidth)
	return geom.Size{W: width.Widest(lines), H: len(lines)}
}

// ToolTip is the default tooltip body.
type ToolTip struct {
	Title       string
	Description string

	// Markdown renders Description through MD instead of plain wrapping.
	Markdown bool
	MD       *MarkdownRenderer

	Fg, Bg      theme.Color
	TitleColor  theme.Color
	BorderColor theme.Color
	ShadowColor theme.Color

	Border bool
	Shadow bool

	// Faint dims the whole box; used while fading in.
	Faint bool
}

const padX = 1

// chrome returns the horizontal cells used by padding, border and shadow.
func (t *ToolTip) chrome() int {
	n := 2 * padX
	if t.Border {
		n += 2
	}
	if t.Shadow {
		n++
	}
	return n
}

// Render lays the tooltip out so that no line exceeds maxWidth. Text
// wraps at the width left after padding, border and shadow.
func (t *ToolTip) Render(maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	inner := max(maxWidth-t.chrome(), 1)

	body := t.body(inner)
	if len(body) == 0 {
		body = []string{""}
	}
	w := width.Widest(body)
	for i, l := range body {
		body[i] = width.PadRight(l, w)
	}

	style := lipgloss.NewStyle().
		Foreground(t.Fg.Terminal()).
		Background(t.Bg.Terminal()).
		Padding(0, padX).
		Faint(t.Faint)
	if t.Border {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderColor.Terminal()).
			BorderBackground(t.Bg.Terminal())
	}

	lines := strings.Split(style.Render(strings.Join(body, "\n")), "\n")
	if t.Shadow {
		lines = t.dropShadow(lines)
	}
	for i, l := range lines {
		if width.VisibleWidth(l) > maxWidth {
			lines[i] = width.TruncateToWidth(l, maxWidth)
		}
	}
	return lines
}

func (t *ToolTip) body(inner int) []string {
	var out []string
	if t.Title != "" {
		title := lipgloss.NewStyle().
			Bold(true).
			Foreground(t.TitleColor.Terminal()).
			Background(t.Bg.Terminal())
		for _, l := range width.Wrap(t.Title, inner) {
			out = append(out, title.Render(l))
		}
	}
	if t.Description == "" {
		return out
	}
	if t.Title != "" {
		out = append(out, "")
	}
	if t.Markdown && t.MD != nil {
		rendered := t.MD.Render(t.Description, inner)
		for _, l := range strings.Split(rendered, "\n") {
			out = append(out, strings.TrimRight(l, " "))
		}
		return out
	}
	return append(out, width.Wrap(t.Description, inner)...)
}

// dropShadow adds a one-cell shadow on the right and bottom edges.
func (t *ToolTip) dropShadow(lines []string) []string {
	cell := t.ShadowColor.Bg().Render(" ")
	w := width.Widest(lines)
	out := make([]string, 0, len(lines)+1)
	for i, l := range lines {
		if i == 0 {
			out = append(out, l+" ")
			continue
		}
		out = append(out, l+cell)
	}
	return append(out, " "+strings.Repeat(cell, w))
}
