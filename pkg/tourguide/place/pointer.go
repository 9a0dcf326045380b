// ABOUTME: Pointer placement using the shared per-axis resolvers
// ABOUTME: Horizontal position comes from screen space, vertical from window space

package place

import "github.com/mauromedda/tourguide-go/pkg/tourguide/geom"

// Pointer returns the top-left cell of a pointer of the given size.
// The pointer is drawn inside the content window, so its row is resolved
// against the target's window-relative bounds while its column uses the
// screen bounds. The two differ only by the content origin; keep them
// separate rather than converting one into the other.
func Pointer(g geom.Gravity, screen, window geom.Rect, size geom.Size) geom.Point {
	return geom.Point{
		X: geom.ResolveX(g.H, screen.X, screen.W, size.W),
		Y: geom.ResolveY(g.V, window.Y, window.H, size.H),
	}
}
