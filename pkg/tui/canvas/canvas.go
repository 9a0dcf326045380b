// ABOUTME: Canvas composites positioned layers onto a fixed-size frame of styled lines
// ABOUTME: Put splices text at a cell offset; Shade restyles every cell outside a region

package canvas

import (
	"strings"

	"github.com/mauromedda/tourguide-go/pkg/tui/width"
)

const reset = "\x1b[0m"

// Canvas is a width x height frame of terminal lines. A Canvas returned by
// Translate shares its lines with the parent and only shifts coordinates.
type Canvas struct {
	lines  *[]string
	w, h   int
	dx, dy int

	// Frame is the animation frame counter for the pass being drawn.
	Frame int
}

// New builds a canvas from rendered lines, padding or trimming to h rows.
func New(lines []string, w, h int) *Canvas {
	rows := make([]string, h)
	copy(rows, lines)
	return &Canvas{lines: &rows, w: w, h: h}
}

// Width returns the frame width in cells.
func (c *Canvas) Width() int { return c.w }

// Height returns the frame height in rows.
func (c *Canvas) Height() int { return c.h }

// Translate returns a view of c whose origin sits at (dx, dy) in c's
// coordinates. Drawing through it lands on the same frame.
func (c *Canvas) Translate(dx, dy int) *Canvas {
	return &Canvas{lines: c.lines, w: c.w, h: c.h, dx: c.dx + dx, dy: c.dy + dy, Frame: c.Frame}
}

// Origin returns the frame coordinates of this view's (0, 0).
func (c *Canvas) Origin() (x, y int) {
	return c.dx, c.dy
}

// Lines returns the frame rows.
func (c *Canvas) Lines() []string {
	return *c.lines
}

// String joins the frame rows with newlines.
func (c *Canvas) String() string {
	return strings.Join(*c.lines, "\n")
}

// Put draws block with its top-left cell at (x, y). Anything falling
// outside the frame is clipped; cells of the underlying row on either
// side keep their original styling.
func (c *Canvas) Put(x, y int, block []string) {
	x += c.dx
	y += c.dy
	rows := *c.lines
	for i, line := range block {
		row := y + i
		if row < 0 || row >= c.h {
			continue
		}
		lw := width.VisibleWidth(line)
		left := x
		if left < 0 {
			line = width.SliceByColumn(line, -left, lw)
			lw += left
			left = 0
		}
		if left+lw > c.w {
			line = width.SliceByColumn(line, 0, c.w-left)
			lw = c.w - left
		}
		if lw <= 0 {
			continue
		}
		rows[row] = splice(rows[row], left, lw, line)
	}
}

// splice replaces columns [col, col+n) of base with over.
func splice(base string, col, n int, over string) string {
	base = width.PadRight(base, col+n)
	prefix := width.PadRight(width.SliceByColumn(base, 0, col), col)
	suffix := width.SliceByColumn(base, col+n, width.VisibleWidth(base))
	return prefix + reset + over + reset + suffix
}

// Shade restyles every cell for which keep returns false, using style on
// the cell's plain text. Rows are padded to the full width first so the
// shade covers the whole frame. keep receives frame coordinates relative
// to this view's origin.
func (c *Canvas) Shade(keep func(x, y int) bool, style func(string) string) {
	rows := *c.lines
	for row := range rows {
		rows[row] = shadeRow(width.PadRight(rows[row], c.w), row-c.dy, c.dx, keep, style)
	}
}

func shadeRow(line string, y, dx int, keep func(x, y int) bool, style func(string) string) string {
	var out, run strings.Builder
	var sgr width.ActiveSGR
	inRun := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(reset)
		out.WriteString(style(run.String()))
		out.WriteString(reset)
		out.WriteString(sgr.String())
		run.Reset()
	}

	for _, seg := range width.Segments(line) {
		if seg.IsSeq {
			sgr.Apply(seg.Text)
			if !inRun {
				out.WriteString(seg.Text)
			}
			continue
		}
		if keep(seg.Col-dx, y) {
			if inRun {
				flush()
				inRun = false
			}
			out.WriteString(seg.Text)
			continue
		}
		inRun = true
		run.WriteString(seg.Text)
	}
	flush()
	return out.String()
}
