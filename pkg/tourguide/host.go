// ABOUTME: Host and Layer interfaces the guide drives: target queries, mounting, layout notifications
// ABOUTME: A host owns the frame; layers draw onto it and see mouse events top-most first

package tourguide

import (
	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tui/canvas"
)

// ListenerID identifies a registered layout listener.
type ListenerID int

// Host is the UI framework a guide runs in. All methods are called from
// the host's UI goroutine.
type Host interface {
	// IsAttached reports whether target has been laid out on screen.
	IsAttached(target string) bool
	// TargetBounds returns the target's screen-space bounds.
	TargetBounds(target string) (geom.Rect, bool)
	// TargetWindowBounds returns the target's bounds relative to the
	// content window.
	TargetWindowBounds(target string) (geom.Rect, bool)
	// ContentOrigin is the screen position of the content window.
	ContentOrigin() geom.Point
	// Viewport is the screen size in cells.
	Viewport() geom.Size
	// Density is cells per density-independent unit.
	Density() float64

	// AddLayoutListener registers fn to run after every layout pass until
	// removed. Listeners added during a pass first run on the next one.
	AddLayoutListener(fn func()) ListenerID
	// RemoveLayoutListener is a no-op for unknown ids.
	RemoveLayoutListener(id ListenerID)

	// Mount places l above every layer mounted before it.
	Mount(space Space, l Layer)
	// Unmount removes l; unknown layers are ignored.
	Unmount(l Layer)
	// RequestLayout asks for another layout pass.
	RequestLayout()
}

// Layer is something a guide mounts on the host.
type Layer interface {
	// Draw paints the layer. The canvas origin is the origin of the space
	// the layer was mounted in.
	Draw(c *canvas.Canvas)
	// HandleMouse receives events in the layer's space and reports
	// whether the event was consumed. Unconsumed events continue to the
	// layers underneath and finally the application.
	HandleMouse(ev MouseEvent) bool
}

// Animator is implemented by layers that need periodic redraws.
type Animator interface {
	Animating() bool
}
