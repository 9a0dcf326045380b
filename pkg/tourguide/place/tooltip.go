// ABOUTME: Two-pass tooltip placement: anchor estimate, viewport clamping, height correction
// ABOUTME: Pure functions over target bounds, measured size, gravity, viewport width, and adjustment

package place

import "github.com/mauromedda/tourguide-go/pkg/tourguide/geom"

// AdjustmentUnits is how far a corner-anchored tooltip overlaps its
// target, in density-independent units.
const AdjustmentUnits = 10

// Adjustment converts AdjustmentUnits to cells for the given density,
// truncating toward zero.
func Adjustment(density float64) int {
	return int(AdjustmentUnits * density)
}

// Placement is a satellite's origin plus its final width.
type Placement struct {
	X, Y int
	W    int
}

// ToolTipInput carries everything pass 1 needs.
type ToolTipInput struct {
	Target   geom.Rect    // screen-space target bounds
	Measured geom.Size    // natural size from the off-screen measurement
	Gravity  geom.Gravity // where the tooltip sits relative to the target
	Viewport int          // viewport width in cells
	Adjust   int          // overlap in cells; zero unless the gravity asks for it
}

// ToolTipX returns the pass-1 x for a tooltip of width w. The tooltip
// anchors on the target's centre column: Left hangs it to the left of that
// column, Right to the right, anything else centres it there.
func ToolTipX(g geom.Gravity, target geom.Rect, w, adjust int) int {
	anchor := target.X + target.W/2
	switch g.H {
	case geom.Left:
		return anchor - w + adjust
	case geom.Right:
		return anchor - adjust
	default:
		return anchor - w/2
	}
}

// ToolTipY returns the y for a tooltip of height h. Top puts it above the
// target, anything else below. Corner-anchored tooltips (a horizontal flag
// is set) are pulled onto the target by adjust; edge-centred ones are
// pushed away from it.
func ToolTipY(g geom.Gravity, target geom.Rect, h, adjust int) int {
	corner := g.HasHorizontal()
	if g.V == geom.Top {
		if corner {
			return target.Y - h + adjust
		}
		return target.Y - h - adjust
	}
	if corner {
		return target.Y + target.H - adjust
	}
	return target.Y + target.H + adjust
}

// Clamp fits a horizontal span into [0, viewport). The span shrinks rather
// than moves: a width wider than the viewport is cut to it, a negative x
// gives up the overflowing columns, and a span running past the right edge
// is trimmed. Clamp is idempotent and its result always satisfies
// x >= 0, w >= 0 and x+w <= viewport for a non-negative viewport.
func Clamp(x, w, viewport int) (int, int) {
	if w > viewport {
		w = viewport
	}
	if x < 0 {
		w += x
		x = 0
	}
	if x+w > viewport {
		if x > viewport {
			x = viewport
		}
		w = viewport - x
	}
	return x, max(w, 0)
}

// ToolTip runs pass 1 and the boundary clamp.
func ToolTip(in ToolTipInput) Placement {
	w := min(in.Measured.W, in.Viewport)
	x := ToolTipX(in.Gravity, in.Target, w, in.Adjust)
	y := ToolTipY(in.Gravity, in.Target, in.Measured.H, in.Adjust)
	x, w = Clamp(x, w, in.Viewport)
	return Placement{X: x, Y: y, W: w}
}

// Correct is pass 2: given the tooltip's height after it has been laid out
// at its final width, it recomputes only the vertical position.
func Correct(p Placement, g geom.Gravity, target geom.Rect, height, adjust int) Placement {
	p.Y = ToolTipY(g, target, height, adjust)
	return p
}
