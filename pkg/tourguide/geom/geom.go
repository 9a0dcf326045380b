// ABOUTME: Cell-space geometry primitives shared by hole, pointer, and tooltip placement
// ABOUTME: Point, Size, Rect with half-open containment and growth helpers

package geom

import "fmt"

// Point is a cell position. X grows rightwards, Y downwards.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width and height in cells.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle; (X, Y) is the top-left cell.
type Rect struct {
	X, Y, W, H int
}

// RectAt builds a Rect from an origin and a size.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Origin returns the top-left cell.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Grow returns r expanded by n cells on every side. Negative n shrinks it,
// never below zero size.
func (r Rect) Grow(n int) Rect {
	g := Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
	g.W = max(g.W, 0)
	g.H = max(g.H, 0)
	return g
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
