// ABOUTME: Tooltip layer: renders the bubble at its placement and owns the height correction
// ABOUTME: Lines are cached per width; the measured height from the first pass is kept for inspection

package tourguide

import (
	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/place"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/view"
	"github.com/mauromedda/tourguide-go/pkg/tui/canvas"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
	"github.com/mauromedda/tourguide-go/pkg/tui/width"
)

// ToolTipLayer is the tooltip bubble, mounted in root space.
type ToolTipLayer struct {
	cfg     *ToolTip
	r       view.Renderer
	builtin *view.ToolTip

	target    geom.Rect
	adjust    int
	placement place.Placement
	measured  geom.Size
	corrected bool

	cache      []string
	cacheW     int
	cacheFaint bool
	cached     bool

	start, stage int
}

func newToolTipLayer(t *ToolTip, p theme.Palette, md *view.MarkdownRenderer) *ToolTipLayer {
	l := &ToolTipLayer{cfg: t, start: -1}
	if t.View != nil {
		l.r = t.View
		return l
	}
	bg, fg := t.BackgroundColor, t.TextColor
	if bg.IsZero() {
		bg = p.TooltipBg
	}
	if fg.IsZero() {
		fg = p.TooltipFg
	}
	l.builtin = &view.ToolTip{
		Title:       t.Title,
		Description: t.Description,
		Markdown:    t.Markdown,
		MD:          md,
		Fg:          fg,
		Bg:          bg,
		TitleColor:  p.TooltipTitle,
		BorderColor: p.TooltipBorder,
		ShadowColor: p.Shadow,
		Border:      t.Border,
		Shadow:      t.Shadow,
	}
	l.r = l.builtin
	return l
}

// measure returns the natural size within the viewport or the configured
// width cap.
func (l *ToolTipLayer) measure(viewport int) geom.Size {
	maxW := viewport
	if l.cfg.Width > 0 {
		maxW = min(maxW, l.cfg.Width)
	}
	l.measured = view.Measure(view.RenderFunc(func(w int) []string {
		return l.lines(w, false)
	}), maxW)
	return l.measured
}

func (l *ToolTipLayer) lines(w int, faint bool) []string {
	if l.cached && l.cacheW == w && l.cacheFaint == faint {
		return l.cache
	}
	if l.builtin != nil {
		l.builtin.Faint = faint
	}
	out := l.r.Render(w)
	for i, s := range out {
		if width.VisibleWidth(s) > w {
			out[i] = width.TruncateToWidth(s, w)
		}
	}
	l.cache, l.cacheW, l.cacheFaint, l.cached = out, w, faint, true
	return out
}

// Placement returns the current origin and width in screen space.
func (l *ToolTipLayer) Placement() place.Placement { return l.placement }

// Measured returns the natural size used for the first pass.
func (l *ToolTipLayer) Measured() geom.Size { return l.measured }

// Height returns the height when laid out at the placement width.
func (l *ToolTipLayer) Height() int {
	return len(l.lines(l.placement.W, false))
}

// Bounds returns the screen rectangle the tooltip covers.
func (l *ToolTipLayer) Bounds() geom.Rect {
	return geom.Rect{X: l.placement.X, Y: l.placement.Y, W: l.placement.W, H: l.Height()}
}

// Corrected reports whether the second pass has run.
func (l *ToolTipLayer) Corrected() bool { return l.corrected }

// correct re-derives y from the laid-out height. Only y changes.
func (l *ToolTipLayer) correct() {
	l.placement = place.Correct(l.placement, l.cfg.Gravity, l.target, l.Height(), l.adjust)
	l.corrected = true
}

func (l *ToolTipLayer) fading() bool {
	return l.cfg.EnterAnimation == FadeIn && (l.start < 0 || l.stage < fadeFrames-1)
}

// Draw paints the bubble at its placement.
func (l *ToolTipLayer) Draw(c *canvas.Canvas) {
	if l.start < 0 {
		l.start = c.Frame
	}
	l.stage = c.Frame - l.start
	if l.placement.W <= 0 {
		return
	}
	c.Put(l.placement.X, l.placement.Y, l.lines(l.placement.W, l.fading()))
}

// Animating reports whether the fade-in is still running.
func (l *ToolTipLayer) Animating() bool { return l.fading() }

// HandleMouse sends taps on the bubble to the tooltip's handler. Without
// a handler the bubble is transparent to input.
func (l *ToolTipLayer) HandleMouse(ev MouseEvent) bool {
	if l.cfg.OnClick == nil || ev.Gesture() != Tap {
		return false
	}
	if !l.Bounds().Contains(geom.Point{X: ev.X, Y: ev.Y}) {
		return false
	}
	if ev.Action == MousePress {
		l.cfg.OnClick(ev)
	}
	return true
}
