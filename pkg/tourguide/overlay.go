// ABOUTME: Overlay layer: a full-screen scrim with a shaped hole over the target and a finish button
// ABOUTME: Drawn in content space shifted back by the content origin so the hole lines up on screen

package tourguide

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/view"
	"github.com/mauromedda/tourguide-go/pkg/tui/canvas"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
	"github.com/mauromedda/tourguide-go/pkg/tui/width"
)

// OverlayLayer is the scrim mounted by a guide. A nil Overlay config
// still mounts it invisibly so MotionType is enforced.
type OverlayLayer struct {
	cfg     *Overlay
	motion  MotionType
	policy  ClickPolicy
	hole    geom.Rect
	offset  geom.Point
	palette theme.Palette

	button    string
	buttonBox geom.Rect

	start, stage int
}

func newOverlayLayer(cfg Config, l Layout, viewport geom.Size, p theme.Palette) *OverlayLayer {
	o := &OverlayLayer{
		cfg:     cfg.Overlay,
		motion:  cfg.Motion,
		policy:  ResolveClickPolicy(cfg.Overlay),
		hole:    l.Hole,
		offset:  l.OverlayOffset,
		palette: p,
		start:   -1,
	}
	if o.cfg != nil && o.cfg.FinishButton != nil {
		o.button = view.Button(o.cfg.FinishButton.Label, p.ButtonText, p.Button)
		w := width.VisibleWidth(o.button)
		o.buttonBox = geom.Rect{
			X: (viewport.W - w) / 2,
			Y: max(viewport.H-2, 0),
			W: w,
			H: 1,
		}
	}
	return o
}

// Policy returns the click policy resolved at setup.
func (o *OverlayLayer) Policy() ClickPolicy { return o.policy }

// Hole returns the hole rectangle in screen space.
func (o *OverlayLayer) Hole() geom.Rect { return o.hole }

// Offset returns where the screen origin sits in content space.
func (o *OverlayLayer) Offset() geom.Point { return o.offset }

// FinishButtonBounds returns the finish button's screen bounds.
func (o *OverlayLayer) FinishButtonBounds() (geom.Rect, bool) {
	return o.buttonBox, o.button != ""
}

// InHole reports whether screen cell p is uncovered for input purposes.
// NoHole hides the hole visually but keeps it for hit-testing.
func (o *OverlayLayer) InHole(p geom.Point) bool {
	if o.cfg != nil && o.cfg.Style == NoHole {
		return o.hole.Contains(p)
	}
	return o.visible(p)
}

// visible reports whether screen cell p is drawn uncovered.
func (o *OverlayLayer) visible(p geom.Point) bool {
	style := Rectangle
	if o.cfg != nil {
		style = o.cfg.Style
	}
	return shapeContains(style, o.hole, p)
}

func shapeContains(s Style, r geom.Rect, p geom.Point) bool {
	if r.Empty() || !r.Contains(p) && s != Circle {
		return false
	}
	switch s {
	case NoHole:
		return false
	case RoundedRectangle:
		if r.W < 3 || r.H < 3 {
			return true
		}
		cornerX := p.X == r.X || p.X == r.Right()-1
		cornerY := p.Y == r.Y || p.Y == r.Bottom()-1
		return !(cornerX && cornerY)
	case Circle:
		// ellipse through the rectangle's corners
		rx := float64(r.W) / 2 * math.Sqrt2
		ry := float64(r.H) / 2 * math.Sqrt2
		dx := (float64(p.X) + 0.5 - (float64(r.X) + float64(r.W)/2)) / rx
		dy := (float64(p.Y) + 0.5 - (float64(r.Y) + float64(r.H)/2)) / ry
		return dx*dx+dy*dy <= 1
	default:
		return true
	}
}

// Draw shades everything outside the hole.
func (o *OverlayLayer) Draw(c *canvas.Canvas) {
	if o.start < 0 {
		o.start = c.Frame
	}
	o.stage = c.Frame - o.start
	if o.cfg == nil {
		return
	}

	screen := c.Translate(o.offset.X, o.offset.Y)
	scrim := o.scrimStyle()
	screen.Shade(func(x, y int) bool {
		return o.visible(geom.Point{X: x, Y: y})
	}, func(s string) string { return scrim.Render(s) })

	if o.button != "" {
		screen.Put(o.buttonBox.X, o.buttonBox.Y, []string{o.button})
	}
}

func (o *OverlayLayer) scrimStyle() lipgloss.Style {
	bg := o.cfg.BackgroundColor
	if bg.IsZero() {
		bg = o.palette.Scrim
	}
	s := lipgloss.NewStyle().Faint(true)
	stage := fadeFrames - 1
	if o.cfg.EnterAnimation == FadeIn {
		stage = min(o.stage, stage)
	}
	if stage >= 1 {
		s = s.Foreground(o.palette.ScrimText.Terminal())
	}
	if stage >= 2 {
		s = s.Background(bg.Terminal())
	}
	return s
}

// Animating reports whether the fade-in is still running.
func (o *OverlayLayer) Animating() bool {
	return o.cfg != nil && o.cfg.EnterAnimation == FadeIn && (o.start < 0 || o.stage < fadeFrames-1)
}

// HandleMouse applies the finish button and the click policy.
func (o *OverlayLayer) HandleMouse(ev MouseEvent) bool {
	p := geom.Point{X: ev.X, Y: ev.Y}.Sub(o.offset)
	g := ev.Gesture()

	if o.button != "" && g == Tap && o.buttonBox.Contains(p) {
		if ev.Action == MousePress && o.cfg.FinishButton.OnClick != nil {
			o.cfg.FinishButton.OnClick()
		}
		return true
	}

	blockHole := o.cfg != nil && o.cfg.DisableClickThroughHole
	consume, handle := o.policy.route(g, o.InHole(p), o.motion, blockHole)
	if handle && ev.Action == MousePress {
		ev.X, ev.Y = p.X, p.Y
		o.cfg.OnClick(ev)
	}
	return consume
}
