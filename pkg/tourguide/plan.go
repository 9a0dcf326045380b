// ABOUTME: Plan computes a step's geometry from a config and a snapshot of the host
// ABOUTME: Pure: hole rect, overlay offset, pointer cell and the tooltip's first-pass placement

package tourguide

import (
	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/place"
)

// PointerSize is the pointer's fixed footprint in cells.
var PointerSize = geom.Size{W: 3, H: 1}

// Frame is what Plan needs to know about the host and the target.
type Frame struct {
	Target        geom.Rect  // screen space
	Window        geom.Rect  // relative to the content window
	ContentOrigin geom.Point // screen position of the content window
	Viewport      geom.Size
	Density       float64
	// ToolTipSize is the tooltip's natural size; ignored without a tooltip.
	ToolTipSize geom.Size
}

// Layout is the geometry of one step.
type Layout struct {
	// Hole is the uncovered region in screen space.
	Hole geom.Rect
	// OverlayOffset is where the overlay's screen origin sits in content
	// space.
	OverlayOffset geom.Point

	HasPointer bool
	// Pointer is the pointer cell in content space.
	Pointer geom.Point

	HasToolTip bool
	ToolTip    place.Placement
	// Adjust is the tooltip overlap in cells.
	Adjust int
}

// Plan lays out a step. It is the whole geometry engine; Guide only adds
// mounting and the second tooltip pass.
func Plan(cfg Config, f Frame) Layout {
	l := Layout{
		Hole:          f.Target,
		OverlayOffset: geom.Point{X: -f.ContentOrigin.X, Y: -f.ContentOrigin.Y},
	}
	if cfg.Overlay != nil {
		l.Hole = f.Target.Grow(cfg.Overlay.Padding)
	}

	if cfg.Pointer != nil {
		l.HasPointer = true
		l.Pointer = place.Pointer(cfg.Pointer.Gravity, f.Target, f.Window, PointerSize)
	}

	if cfg.ToolTip != nil {
		l.HasToolTip = true
		l.Adjust = toolTipAdjust(cfg.ToolTip, f.Density)
		l.ToolTip = place.ToolTip(place.ToolTipInput{
			Target:   f.Target,
			Measured: f.ToolTipSize,
			Gravity:  cfg.ToolTip.Gravity,
			Viewport: f.Viewport.W,
			Adjust:   l.Adjust,
		})
	}
	return l
}

// toolTipAdjust is non-zero only for corner-anchored tooltips.
func toolTipAdjust(t *ToolTip, density float64) int {
	if !t.Gravity.HasHorizontal() {
		return 0
	}
	return place.Adjustment(density)
}
