// ABOUTME: Pointer layer: a small animated marker next to the target
// ABOUTME: The technique picks the frame cycle; positions come from Plan in content space

package tourguide

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tui/canvas"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
)

type pointerFrame struct {
	glyph  string
	dx, dy int
}

// pointer glyphs are PointerSize wide
var pointerFrames = map[Technique][]pointerFrame{
	Click: {
		{glyph: "(●)"}, {glyph: " ● "}, {glyph: " • "}, {glyph: " ● "},
	},
	HorizontalLeft: {
		{glyph: "◀● "}, {glyph: "◀● ", dx: -1}, {glyph: "◀● ", dx: -2}, {glyph: "◀● ", dx: -1},
	},
	HorizontalRight: {
		{glyph: " ●▶"}, {glyph: " ●▶", dx: 1}, {glyph: " ●▶", dx: 2}, {glyph: " ●▶", dx: 1},
	},
	VerticalUpward: {
		{glyph: " ▲ "}, {glyph: " ▲ ", dy: -1}, {glyph: " ▲ ", dy: -2}, {glyph: " ▲ ", dy: -1},
	},
	VerticalDownward: {
		{glyph: " ▼ "}, {glyph: " ▼ ", dy: 1}, {glyph: " ▼ ", dy: 2}, {glyph: " ▼ ", dy: 1},
	},
}

func framesFor(t Technique, frame int) pointerFrame {
	frames, ok := pointerFrames[t]
	if !ok {
		frames = pointerFrames[Click]
	}
	return frames[frame%len(frames)]
}

// PointerLayer is the animated pointer.
type PointerLayer struct {
	pos       geom.Point
	technique Technique
	color     theme.Color
	start     int
}

func newPointerLayer(cfg Config, l Layout, p theme.Palette) *PointerLayer {
	c := cfg.Pointer.Color
	if c.IsZero() {
		c = p.Pointer
	}
	return &PointerLayer{pos: l.Pointer, technique: cfg.Technique, color: c, start: -1}
}

// Position returns the resting cell in content space.
func (p *PointerLayer) Position() geom.Point { return p.pos }

// Draw paints the current animation frame.
func (p *PointerLayer) Draw(c *canvas.Canvas) {
	if p.start < 0 {
		p.start = c.Frame
	}
	f := framesFor(p.technique, max(c.Frame-p.start, 0))
	glyph := lipgloss.NewStyle().Bold(true).Foreground(p.color.Terminal()).Render(f.glyph)
	c.Put(p.pos.X+f.dx, p.pos.Y+f.dy, []string{glyph})
}

// Animating is always true: the pointer loops until cleaned up.
func (p *PointerLayer) Animating() bool { return true }

// HandleMouse never consumes; the pointer is decoration.
func (p *PointerLayer) HandleMouse(MouseEvent) bool { return false }
